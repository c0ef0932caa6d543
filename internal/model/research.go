package model

type Journal struct {
	Ownership
	SerialNo        string     `gorm:"type:text" json:"serial_no"`
	Title           string     `gorm:"type:text;not null" json:"title" validate:"required"`
	FacultyNames    StringList `json:"facultyNames"`
	Campus          string     `gorm:"type:text;not null" json:"campus" validate:"required"`
	Dept            string     `gorm:"type:text;not null" json:"dept" validate:"required"`
	JournalName     string     `gorm:"type:text;not null" json:"journalName" validate:"required"`
	Month           string     `gorm:"type:text;not null" json:"month" validate:"required"`
	Year            string     `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
	VolumeNo        string     `gorm:"type:text" json:"volumeNo"`
	IssueNo         string     `gorm:"type:text" json:"issueNo"`
	ISSN            string     `gorm:"type:text" json:"issn"`
	WebsiteLink     string     `gorm:"type:text" json:"websiteLink" validate:"omitempty,url"`
	ArticleLink     string     `gorm:"type:text" json:"articleLink" validate:"omitempty,url"`
	IsUGC           bool       `json:"isUGC"`
	IsScopus        bool       `json:"isScopus"`
	IsWOS           bool       `json:"isWOS"`
	QNo             string     `gorm:"type:text" json:"qNo"`
	ImpactFactor    string     `gorm:"type:text" json:"impactFactor"`
	IsCapstone      bool       `json:"isCapstone"`
	IsAffiliating   bool       `json:"isAffiliating"`
	PageNumber      string     `gorm:"type:text" json:"pageNumber"`
	Abstract        string     `gorm:"type:text" json:"abstract"`
	Keywords        StringList `json:"keywords"`
	DomainExpertise string     `gorm:"type:text" json:"domainExpertise"`
}

func (Journal) TableName() string { return "journals" }

type Conference struct {
	Ownership
	SerialNo                   string     `gorm:"type:text" json:"serial_no"`
	TeacherName                string     `gorm:"type:text" json:"teacherName"`
	CoAuthors                  StringList `json:"coAuthors"`
	TotalAuthors               int        `json:"totalAuthors" validate:"gte=0"`
	FacultyNames               StringList `json:"facultyNames"`
	Campus                     string     `gorm:"type:text;not null" json:"campus" validate:"required"`
	Dept                       string     `gorm:"type:text;not null" json:"dept" validate:"required"`
	BookTitle                  string     `gorm:"type:text" json:"bookTitle"`
	PaperTitle                 string     `gorm:"type:text;not null" json:"paperTitle" validate:"required"`
	ProceedingsConferenceTitle string     `gorm:"type:text" json:"proceedings_conference_title"`
	VolumeNo                   string     `gorm:"type:text" json:"volumeNo"`
	IssueNo                    string     `gorm:"type:text" json:"issueNo"`
	Year                       string     `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
	ISSN                       string     `gorm:"type:text" json:"issn"`
	IsAffiliatingSame          bool       `json:"is_affiliating_institution_same"`
	PublisherName              string     `gorm:"type:text" json:"publisherName"`
	ImpactFactor               string     `gorm:"type:text" json:"impactFactor"`
	LinkOfPaper                string     `gorm:"type:text" json:"link_of_paper" validate:"omitempty,url"`
	IsCapstone                 bool       `json:"isCapstone"`
	Abstract                   string     `gorm:"type:text" json:"abstract"`
	Keywords                   StringList `json:"keywords"`
	DomainExpertise            string     `gorm:"type:text" json:"domainExpertise"`
}

func (Conference) TableName() string { return "conferences" }

type Patent struct {
	Ownership
	Campus       string `gorm:"type:text;not null" json:"campus" validate:"required"`
	Dept         string `gorm:"type:text;not null" json:"dept" validate:"required"`
	PatentNumber string `gorm:"type:text;not null" json:"patentNumber" validate:"required"`
	PatentTitle  string `gorm:"type:text;not null" json:"patentTitle" validate:"required"`
	IsCapstone   bool   `json:"isCapstone"`
	Year         string `gorm:"type:text;not null;index" json:"year" validate:"required,len=4,numeric"`
	DocumentLink string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
}

func (Patent) TableName() string { return "patents" }

type Award struct {
	Ownership
	YearOfAward       string `gorm:"type:text;not null;index" json:"yearOfAward" validate:"required,len=4,numeric"`
	TitleOfInnovation string `gorm:"type:text;not null" json:"titleOfInnovation" validate:"required"`
	AwardeeName       string `gorm:"type:text;not null" json:"awardeeName" validate:"required"`
	AwardingAgency    string `gorm:"type:text;not null" json:"awardingAgency" validate:"required"`
	Category          string `gorm:"type:text;not null" json:"category" validate:"required"`
	Status            string `gorm:"type:text" json:"status"`
	DocumentLink      string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
}

func (Award) TableName() string { return "awards" }

type Grant struct {
	Ownership
	SchemeName       string `gorm:"type:text;not null" json:"schemeName" validate:"required"`
	InvestigatorName string `gorm:"type:text;not null" json:"investigatorName" validate:"required"`
	FundingAgency    string `gorm:"type:text;not null" json:"fundingAgency" validate:"required"`
	Type             string `gorm:"type:text;not null" json:"type" validate:"required"`
	Department       string `gorm:"type:text;not null" json:"department" validate:"required"`
	YearOfAward      string `gorm:"type:text;not null;index" json:"yearOfAward" validate:"required,len=4,numeric"`
	FundsProvided    string `gorm:"type:text;not null" json:"fundsProvided" validate:"required"`
	Duration         string `gorm:"type:text;not null" json:"duration" validate:"required"`
	DocumentLink     string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
	Status           string `gorm:"type:text" json:"status"`
}

func (Grant) TableName() string { return "grants" }

type Mou struct {
	Ownership
	OrganizationName string `gorm:"type:text;not null" json:"organizationName" validate:"required"`
	YearOfSigning    string `gorm:"type:text;not null;index" json:"yearOfSigning" validate:"required,len=4,numeric"`
	Duration         string `gorm:"type:text;not null" json:"duration" validate:"required"`
	Activities       string `gorm:"type:text;not null" json:"activities" validate:"required"`
	DocumentLink     string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
}

func (Mou) TableName() string { return "mous" }

type Collaboration struct {
	Ownership
	Title               string `gorm:"type:text;not null" json:"title" validate:"required"`
	CollaboratingAgency string `gorm:"type:text;not null" json:"collaboratingAgency" validate:"required"`
	ParticipantName     string `gorm:"type:text;not null" json:"participantName" validate:"required"`
	YearOfCollaboration string `gorm:"type:text;not null;index" json:"yearOfCollaboration" validate:"required,len=4,numeric"`
	Duration            string `gorm:"type:text;not null" json:"duration" validate:"required"`
	NatureOfActivity    string `gorm:"type:text;not null" json:"natureOfActivity" validate:"required"`
	DocumentLink        string `gorm:"type:text" json:"documentLink" validate:"omitempty,url"`
}

func (Collaboration) TableName() string { return "collaborations" }
