package resource

// The descriptors below are the single source of truth for the API surface:
// tables, column lists, required fields, validated fields, timestamp policy,
// and relation routes. Updates intentionally require full resubmission where
// the entity always did; partial updates are not supported.

// User covers the generic verbs on user accounts. Registration, login, and
// the password-hashing update path live in the account package.
var User = Descriptor{
	Name:      "User account",
	MountPath: "/user_accounts",
	Table:     "user_account",
	IDColumn:  "user_id",
	Columns: []string{
		"user_name", "user_email_address", "password", "role",
	},
	RequiredCreate: []string{"user_email_address", "user_name", "password"},
	RequiredUpdate: []string{"user_email_address", "password", "role"},
	EmailFields:    []string{"user_email_address"},
	CreatedColumn:  "created_date",
	UpdatedColumn:  "last_modified_date",
	ListRoute:      true,
}

var Employer = Descriptor{
	Name:      "Employer",
	MountPath: "/employers",
	Table:     "employer_details",
	IDColumn:  "employer_id",
	Columns: []string{
		"user_id", "employer_first_name", "employer_last_name",
		"employer_profile_picture", "employer_img_key", "employer_s3_folder",
		"employer_dob", "employer_gender", "employer_email_address",
		"employer_role", "employer_social", "company_id", "company_name",
		"company_address", "type_of_company",
	},
	RequiredCreate: []string{
		"user_id", "employer_first_name", "employer_last_name",
		"employer_email_address", "company_id", "company_name",
		"company_address", "type_of_company",
	},
	IDFields:        []string{"user_id", "company_id"},
	EmailFields:     []string{"employer_email_address"},
	CreatedColumn:   "created_date",
	UpdatedColumn:   "date_updated",
	UpdatedOnCreate: true,
	ListRoute:       true,
}

var Company = Descriptor{
	Name:      "Company",
	MountPath: "/company",
	Table:     "company",
	IDColumn:  "company_id",
	Columns: []string{
		"user_id", "company_name", "company_website", "company_email_address",
		"company_logo", "company_logo_key", "company_s3folder",
		"company_description", "company_team_size", "company_stage",
		"company_ceo_video_url", "company_ceo_video_key", "company_address",
		"company_country", "company_values", "company_working_environment",
		"company_growth", "company_diversity", "company_vision",
	},
	RequiredCreate:  []string{"company_name", "user_id"},
	RequiredUpdate:  []string{},
	IDFields:        []string{"user_id"},
	EmailFields:     []string{"company_email_address"},
	CreatedColumn:   "created_date",
	UpdatedColumn:   "last_modified_date",
	UpdatedOnCreate: true,
	ListRoute:       true,
	Relations: []Relation{
		{
			Path: "/user/:user_id",
			Keys: []RelationKey{{Param: "user_id", Column: "user_id", Kind: KeyID}},
			Mode: RelationFirst,
		},
	},
}

var Job = Descriptor{
	Name:      "Job",
	MountPath: "/jobs",
	Table:     "job_details",
	IDColumn:  "job_id",
	Columns: []string{
		"company_id", "job_title", "job_type", "job_category",
		"job_description", "job_offerings", "job_requirements",
		"job_qualification", "job_work_location", "job_expire_date",
	},
	RequiredCreate: []string{
		"company_id", "job_title", "job_type", "job_category",
		"job_description", "job_offerings", "job_requirements",
		"job_qualification", "job_work_location", "job_expire_date",
	},
	IDFields:        []string{"company_id"},
	CreatedColumn:   "created_date",
	UpdatedColumn:   "date_updated",
	UpdatedOnCreate: true,
	ListRoute:       true,
	Relations: []Relation{
		{
			Path: "/company/:company_id",
			Keys: []RelationKey{{Param: "company_id", Column: "company_id", Kind: KeyID}},
			Mode: RelationList,
		},
	},
}

var Candidate = Descriptor{
	Name:      "Candidate",
	MountPath: "/candidate",
	Table:     "candidate_details",
	IDColumn:  "candidate_id",
	Columns: []string{
		"candidate_first_name", "candidate_last_name",
		"candidate_profile_image", "candidate_img_key", "candidate_s3_folder",
		"candidate_dob", "candidate_email_address", "skills",
	},
	RequiredCreate: []string{
		"candidate_first_name", "candidate_last_name",
		"candidate_profile_image", "candidate_img_key", "candidate_s3_folder",
		"candidate_dob", "candidate_email_address", "skills",
	},
	EmailFields:     []string{"candidate_email_address"},
	CreatedColumn:   "created_date",
	UpdatedColumn:   "date_updated",
	UpdatedOnCreate: true,
	ListRoute:       true,
	Relations: []Relation{
		{
			Path:            "/email/:candidate_email_address",
			Keys:            []RelationKey{{Param: "candidate_email_address", Column: "candidate_email_address", Kind: KeyEmail}},
			Mode:            RelationFirstOr404,
			NotFoundMessage: "Candidate email not found",
		},
	},
}

var JobResult = Descriptor{
	Name:      "Job result",
	MountPath: "/job_result",
	Table:     "job_result",
	IDColumn:  "interaction_id",
	Columns: []string{
		"candidate_id", "job_id", "status", "ai_output",
	},
	RequiredCreate:  []string{"candidate_id", "job_id", "status", "ai_output"},
	RequiredUpdate:  []string{"status"},
	UpdateColumns:   []string{"status", "ai_output"},
	IDFields:        []string{"candidate_id", "job_id"},
	CreatedColumn:   "created_date",
	UpdatedColumn:   "date_updated",
	UpdatedOnCreate: true,
	ListRoute:       true,
	Relations: []Relation{
		{
			Path: "/job/:job_id",
			Keys: []RelationKey{{Param: "job_id", Column: "job_id", Kind: KeyID}},
			Mode: RelationListOr404,
		},
		{
			Path: "/jobId/:job_id/candidateId/:candidate_id",
			Keys: []RelationKey{
				{Param: "candidate_id", Column: "candidate_id", Kind: KeyID},
				{Param: "job_id", Column: "job_id", Kind: KeyID},
			},
			Mode: RelationListOr404,
		},
		{
			Path: "/candidate/:candidate_id",
			Keys: []RelationKey{{Param: "candidate_id", Column: "candidate_id", Kind: KeyID}},
			Mode: RelationFirstOr404,
		},
	},
}

var Question = Descriptor{
	Name:      "Question",
	MountPath: "/question",
	Table:     "question_table",
	IDColumn:  "question_id",
	Columns: []string{
		"job_id", "question_title", "question_key", "job_s3_folder",
		"question_video_url", "question_transcript",
	},
	RequiredCreate: []string{
		"question_key", "job_id", "job_s3_folder", "question_title",
		"question_video_url",
	},
	RequiredUpdate: []string{
		"question_key", "job_s3_folder", "question_title", "question_video_url",
	},
	// job_id is fixed at creation; created_date is never touched again.
	UpdateColumns: []string{
		"question_key", "question_transcript", "job_s3_folder",
		"question_title", "question_video_url",
	},
	IDFields:      []string{"job_id"},
	CreatedColumn: "created_date",
	Relations: []Relation{
		{
			Path: "/job/:job_id",
			Keys: []RelationKey{{Param: "job_id", Column: "job_id", Kind: KeyID}},
			Mode: RelationList,
		},
	},
}

var Answer = Descriptor{
	Name:      "Answer",
	MountPath: "/answer",
	Table:     "answer_table",
	IDColumn:  "answer_id",
	Columns: []string{
		"candidate_id", "question_id", "job_id", "answer_url", "answer_title",
		"answer_key", "job_s3_folder", "answer_transcript",
	},
	RequiredCreate: []string{
		"candidate_id", "answer_url", "answer_title", "answer_key",
		"job_s3_folder",
	},
	IDFields:      []string{"candidate_id", "question_id", "job_id"},
	CreatedColumn: "created_date",
	ListRoute:     true,
	Relations: []Relation{
		{
			Path: "/candidate/:candidate_id",
			Keys: []RelationKey{{Param: "candidate_id", Column: "candidate_id", Kind: KeyID}},
			Mode: RelationList,
		},
		{
			Path: "/candidate/:candidate_id/job/:job_id",
			Keys: []RelationKey{
				{Param: "candidate_id", Column: "candidate_id", Kind: KeyID},
				{Param: "job_id", Column: "job_id", Kind: KeyID},
			},
			Mode: RelationList,
		},
		{
			Path: "/question/:question_id",
			Keys: []RelationKey{{Param: "question_id", Column: "question_id", Kind: KeyID}},
			Mode: RelationList,
		},
		{
			Path: "/job/:job_id",
			Keys: []RelationKey{{Param: "job_id", Column: "job_id", Kind: KeyID}},
			Mode: RelationList,
		},
	},
}

// All lists every entity served by the generic engine, in mount order.
// User is first so its special routes can be layered on by the account
// handler.
func All() []Descriptor {
	return []Descriptor{User, Employer, Job, Candidate, JobResult, Question, Answer, Company}
}
