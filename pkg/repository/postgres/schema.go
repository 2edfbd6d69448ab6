package postgres

// Schema for every entity the API serves. Generated identifiers are
// BIGSERIAL; foreign keys stay as loose BIGINT columns, matching the data
// the API has always accepted.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_account (
	user_id BIGSERIAL PRIMARY KEY,
	user_name TEXT,
	user_email_address TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'recruiter',
	created_date TIMESTAMPTZ,
	last_modified_date TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS employer_details (
	employer_id BIGSERIAL PRIMARY KEY,
	user_id BIGINT,
	employer_first_name TEXT,
	employer_last_name TEXT,
	employer_profile_picture TEXT,
	employer_img_key TEXT,
	employer_s3_folder TEXT,
	employer_dob TEXT,
	employer_gender TEXT,
	employer_email_address TEXT,
	employer_role TEXT,
	employer_social TEXT,
	company_id BIGINT,
	company_name TEXT,
	company_address TEXT,
	type_of_company TEXT,
	created_date TIMESTAMPTZ,
	date_updated TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS company (
	company_id BIGSERIAL PRIMARY KEY,
	user_id BIGINT,
	company_name TEXT,
	company_website TEXT,
	company_email_address TEXT,
	company_logo TEXT,
	company_logo_key TEXT,
	company_s3folder TEXT,
	company_description TEXT,
	company_team_size TEXT,
	company_stage TEXT,
	company_ceo_video_url TEXT,
	company_ceo_video_key TEXT,
	company_address TEXT,
	company_country TEXT,
	company_values TEXT,
	company_working_environment TEXT,
	company_growth TEXT,
	company_diversity TEXT,
	company_vision TEXT,
	created_date TIMESTAMPTZ,
	last_modified_date TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS job_details (
	job_id BIGSERIAL PRIMARY KEY,
	company_id BIGINT,
	job_title TEXT,
	job_type TEXT,
	job_category TEXT,
	job_description TEXT,
	job_offerings TEXT,
	job_requirements TEXT,
	job_qualification TEXT,
	job_work_location TEXT,
	job_expire_date TEXT,
	created_date TIMESTAMPTZ,
	date_updated TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS candidate_details (
	candidate_id BIGSERIAL PRIMARY KEY,
	candidate_first_name TEXT,
	candidate_last_name TEXT,
	candidate_profile_image TEXT,
	candidate_img_key TEXT,
	candidate_s3_folder TEXT,
	candidate_dob TEXT,
	candidate_email_address TEXT,
	skills TEXT,
	created_date TIMESTAMPTZ,
	date_updated TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS job_result (
	interaction_id BIGSERIAL PRIMARY KEY,
	candidate_id BIGINT,
	job_id BIGINT,
	status TEXT,
	ai_output TEXT,
	created_date TIMESTAMPTZ,
	date_updated TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS question_table (
	question_id BIGSERIAL PRIMARY KEY,
	job_id BIGINT,
	question_title TEXT,
	question_key TEXT,
	job_s3_folder TEXT,
	question_video_url TEXT,
	question_transcript TEXT,
	created_date TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS answer_table (
	answer_id BIGSERIAL PRIMARY KEY,
	candidate_id BIGINT,
	question_id BIGINT,
	job_id BIGINT,
	answer_url TEXT,
	answer_title TEXT,
	answer_key TEXT,
	job_s3_folder TEXT,
	answer_transcript TEXT,
	created_date TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_company_user ON company(user_id);
CREATE INDEX IF NOT EXISTS idx_job_details_company ON job_details(company_id);
CREATE INDEX IF NOT EXISTS idx_candidate_email ON candidate_details(candidate_email_address);
CREATE INDEX IF NOT EXISTS idx_job_result_job ON job_result(job_id);
CREATE INDEX IF NOT EXISTS idx_job_result_candidate ON job_result(candidate_id);
CREATE INDEX IF NOT EXISTS idx_question_job ON question_table(job_id);
CREATE INDEX IF NOT EXISTS idx_answer_candidate ON answer_table(candidate_id);
CREATE INDEX IF NOT EXISTS idx_answer_question ON answer_table(question_id);
CREATE INDEX IF NOT EXISTS idx_answer_job ON answer_table(job_id);
`
