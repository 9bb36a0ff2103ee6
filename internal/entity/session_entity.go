package entity

type Profession string

const (
	ProfessionStudent        Profession = "Student"
	ProfessionResearcher     Profession = "Researcher"
	ProfessionAcademic       Profession = "Academic"
	ProfessionWriter         Profession = "Writer"
	ProfessionJournalist     Profession = "Journalist"
	ProfessionContentCreator Profession = "Content Creator"
	ProfessionOther          Profession = "Other"
)

var Professions = []Profession{
	ProfessionStudent,
	ProfessionResearcher,
	ProfessionAcademic,
	ProfessionWriter,
	ProfessionJournalist,
	ProfessionContentCreator,
	ProfessionOther,
}

type UserProfile struct {
	Email      string
	Username   string
	Profession Profession
}

// UserSession is "logged in" exactly when Token is non-empty.
type UserSession struct {
	Token   string
	Profile *UserProfile
}

func (s *UserSession) Authenticated() bool {
	return s != nil && s.Token != ""
}
