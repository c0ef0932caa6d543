package service

import (
	"github.com/dangerclosesec/scholar/internal/audit"
	"github.com/dangerclosesec/scholar/internal/domain"
	"github.com/dangerclosesec/scholar/internal/model"
	"github.com/dangerclosesec/scholar/internal/repository"
	"gorm.io/gorm"
)

// Catalog holds one service per kind of owned record.
type Catalog struct {
	Journals       *ResourceService[model.Journal, *model.Journal]
	Conferences    *ResourceService[model.Conference, *model.Conference]
	Patents        *ResourceService[model.Patent, *model.Patent]
	Awards         *ResourceService[model.Award, *model.Award]
	Grants         *ResourceService[model.Grant, *model.Grant]
	Mous           *ResourceService[model.Mou, *model.Mou]
	Collaborations *ResourceService[model.Collaboration, *model.Collaboration]

	DeptConducted *ResourceService[model.DepartmentConductedActivity, *model.DepartmentConductedActivity]
	DeptAttended  *ResourceService[model.DepartmentAttendedActivity, *model.DepartmentAttendedActivity]

	HigherStudies     *ResourceService[model.StudentHigherStudies, *model.StudentHigherStudies]
	EntranceExams     *ResourceService[model.StudentEntranceExam, *model.StudentEntranceExam]
	CareerCounselling *ResourceService[model.StudentCareerCounselling, *model.StudentCareerCounselling]
	SportsCultural    *ResourceService[model.StudentSportsCultural, *model.StudentSportsCultural]
	IntraSports       *ResourceService[model.IntraSports, *model.IntraSports]
	InterSports       *ResourceService[model.InterSports, *model.InterSports]
}

func NewCatalog(db *gorm.DB, users repository.UserRepositoryIface, auditLogger audit.Logger) *Catalog {
	return &Catalog{
		Journals: NewResourceService[model.Journal](db, Descriptor{
			Name:   "journal",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("campus", "campus"),
				repository.Equal("dept", "dept"),
				repository.Equal("journalName", "journal_name"),
				repository.Equal("month", "month"),
				repository.Equal("domainExpertise", "domain_expertise"),
				repository.Bool("isUGC", "is_ugc"),
				repository.Bool("isScopus", "is_scopus"),
				repository.Bool("isWOS", "is_wos"),
				repository.Bool("isCapstone", "is_capstone"),
			},
			AssociationTable: model.JournalUsersTable,
		}, users, auditLogger),

		Conferences: NewResourceService[model.Conference](db, Descriptor{
			Name:   "conference",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("campus", "campus"),
				repository.Equal("dept", "dept"),
				repository.Equal("publisherName", "publisher_name"),
				repository.Equal("domainExpertise", "domain_expertise"),
				repository.Bool("isCapstone", "is_capstone"),
			},
			AssociationTable: model.ConferenceUsersTable,
		}, users, auditLogger),

		Patents: NewResourceService[model.Patent](db, Descriptor{
			Name:   "patent",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("campus", "campus"),
				repository.Equal("dept", "dept"),
				repository.Bool("isCapstone", "is_capstone"),
			},
			AssociationTable: model.PatentUsersTable,
		}, users, auditLogger),

		Awards: NewResourceService[model.Award](db, Descriptor{
			Name:   "award",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year_of_award"),
				repository.Equal("awardeeName", "awardee_name"),
				repository.Equal("awardingAgency", "awarding_agency"),
				repository.Equal("category", "category"),
				repository.Equal("titleOfInnovation", "title_of_innovation"),
			},
		}, users, auditLogger),

		Grants: NewResourceService[model.Grant](db, Descriptor{
			Name:   "grant",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year_of_award"),
				repository.Equal("investigatorName", "investigator_name"),
				repository.Equal("fundingAgency", "funding_agency"),
				repository.Equal("type", "type"),
				repository.Equal("department", "department"),
				repository.Equal("schemeName", "scheme_name"),
			},
		}, users, auditLogger),

		Mous: NewResourceService[model.Mou](db, Descriptor{
			Name:   "mou",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year_of_signing"),
				repository.Equal("organizationName", "organization_name"),
				repository.Equal("duration", "duration"),
			},
		}, users, auditLogger),

		Collaborations: NewResourceService[model.Collaboration](db, Descriptor{
			Name:   "collaboration",
			Domain: domain.DomainResearch,
			Filters: []repository.FieldFilter{
				repository.YearRange("year_of_collaboration"),
				repository.Equal("title", "title"),
				repository.Equal("collaboratingAgency", "collaborating_agency"),
				repository.Equal("participantName", "participant_name"),
				repository.Equal("natureOfActivity", "nature_of_activity"),
			},
		}, users, auditLogger),

		DeptConducted: NewResourceService[model.DepartmentConductedActivity](db, Descriptor{
			Name:   "departmentConductedActivity",
			Domain: domain.DomainDepartment,
			Filters: []repository.FieldFilter{
				repository.TimeRange("duration_start_date", "duration_end_date", "durationStartDate", "durationEndDate"),
				repository.Equal("year", "year"),
				repository.Equal("programTitle", "program_title"),
			},
		}, users, auditLogger),

		DeptAttended: NewResourceService[model.DepartmentAttendedActivity](db, Descriptor{
			Name:   "departmentAttendedActivity",
			Domain: domain.DomainDepartment,
			Filters: []repository.FieldFilter{
				repository.TimeRange("duration_start_date", "duration_end_date", "durationStartDate", "durationEndDate"),
				repository.Equal("year", "year"),
				repository.Equal("nameOfProgram", "name_of_program"),
				repository.IntRange("no_of_participants", "minnoOfParticipants", "maxnoOfParticipants"),
			},
		}, users, auditLogger),

		HigherStudies: NewResourceService[model.StudentHigherStudies](db, Descriptor{
			Name:   "studentHigherStudies",
			Domain: domain.DomainStudent,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("studentName", "student_name"),
				repository.Equal("programGraduatedFrom", "program_graduated_from"),
				repository.Equal("institutionAdmittedTo", "institution_admitted_to"),
				repository.Equal("programmeAdmittedTo", "programme_admitted_to"),
			},
		}, users, auditLogger),

		EntranceExams: NewResourceService[model.StudentEntranceExam](db, Descriptor{
			Name:   "studentEntranceExam",
			Domain: domain.DomainStudent,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("registrationNumber", "registration_number"),
				repository.Equal("studentName", "student_name"),
				repository.Bool("isNET", "is_net"),
				repository.Bool("isSLET", "is_slet"),
				repository.Bool("isGATE", "is_gate"),
				repository.Bool("isGMAT", "is_gmat"),
				repository.Bool("isCAT", "is_cat"),
				repository.Bool("isGRE", "is_gre"),
				repository.Bool("isJAM", "is_jam"),
				repository.Bool("isIELTS", "is_ielts"),
				repository.Bool("isTOEFL", "is_toefl"),
			},
		}, users, auditLogger),

		CareerCounselling: NewResourceService[model.StudentCareerCounselling](db, Descriptor{
			Name:   "studentCareerCounselling",
			Domain: domain.DomainStudent,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("activityName", "activity_name"),
				repository.IntEqual("numberOfStudents", "number_of_students"),
			},
		}, users, auditLogger),

		SportsCultural: NewResourceService[model.StudentSportsCultural](db, Descriptor{
			Name:   "studentSportsCultural",
			Domain: domain.DomainStudent,
			Filters: []repository.FieldFilter{
				repository.YearRange("year"),
				repository.Equal("eventName", "event_name"),
				repository.TimeRange("event_date", "event_date", "startDate", "endDate"),
			},
		}, users, auditLogger),

		IntraSports: NewResourceService[model.IntraSports](db, Descriptor{
			Name:   "intraSports",
			Domain: domain.DomainStudent,
			Filters: []repository.FieldFilter{
				repository.Range("year_of_event", "startYearOfEvent", "endYearOfEvent"),
				repository.Equal("event", "event"),
				repository.Equal("link", "link"),
				repository.TimeRange("start_date", "end_date", "startDate", "endDate"),
			},
		}, users, auditLogger),

		InterSports: NewResourceService[model.InterSports](db, Descriptor{
			Name:   "interSports",
			Domain: domain.DomainStudent,
			Filters: []repository.FieldFilter{
				repository.Range("year_of_event", "startYearOfEvent", "endYearOfEvent"),
				repository.Equal("nameOfStudent", "name_of_student"),
				repository.Equal("nameOfEvent", "name_of_event"),
				repository.Equal("nameOfUniv", "name_of_univ"),
				repository.Equal("teamOrIndi", "team_or_indi"),
				repository.Equal("level", "level"),
				repository.Equal("nameOfAward", "name_of_award"),
			},
		}, users, auditLogger),
	}
}
