package domain

import (
	"github.com/devlink-app/devlink-backend/internal/domain/portfolio"
	"github.com/devlink-app/devlink-backend/internal/domain/user"
)

// Flat aliases so callers can import one package as `types`.

type User = user.User
type UserToken = user.UserToken

type Portfolio = portfolio.Portfolio
type About = portfolio.About
type Skill = portfolio.Skill
type Project = portfolio.Project
type Experience = portfolio.Experience
type Education = portfolio.Education
type Certification = portfolio.Certification

type ReplacePayload = portfolio.ReplacePayload
type AboutInput = portfolio.AboutInput
type SkillInput = portfolio.SkillInput
type ProjectInput = portfolio.ProjectInput
type ExperienceInput = portfolio.ExperienceInput
type EducationInput = portfolio.EducationInput
type CertificationInput = portfolio.CertificationInput
