package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		skills TEXT,
		xp INTEGER DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createHackathonTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE hackathons (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		tags TEXT,
		status TEXT NOT NULL,
		min_team_size INTEGER,
		max_team_size INTEGER,
		allow_solo BOOLEAN,
		required_roles TEXT,
		passing_score REAL,
		submission_type TEXT,
		max_submissions_per_participant INTEGER,
		require_registration BOOLEAN,
		restrict_to_submission_phase BOOLEAN,
		allow_late_submission BOOLEAN,
		allow_edit_after_submit BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE phases (
		id TEXT PRIMARY KEY,
		hackathon_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		start_date DATETIME NOT NULL,
		end_date DATETIME NOT NULL,
		display_order INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE prizes (
		id TEXT PRIMARY KEY,
		hackathon_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		rank INTEGER,
		monetary_value REAL,
		benefits TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTeamTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE teams (
		id TEXT PRIMARY KEY,
		hackathon_id TEXT NOT NULL,
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		tagline TEXT,
		invite_code TEXT UNIQUE NOT NULL,
		status TEXT NOT NULL,
		technical_score REAL DEFAULT 0,
		commercial_score REAL DEFAULT 0,
		operational_score REAL DEFAULT 0,
		final_score REAL DEFAULT 0,
		is_seeking_members BOOLEAN,
		elimination_reason TEXT,
		current_round INTEGER,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(hackathon_id, slug)
	);`)
	mustExec(t, db, `CREATE TABLE team_members (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL,
		is_leader BOOLEAN,
		joined_at DATETIME,
		UNIQUE(team_id, user_id)
	);`)
}

func createRegistrationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE team_registrations (
		id TEXT PRIMARY KEY,
		hackathon_id TEXT NOT NULL,
		team_id TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		registered_at DATETIME,
		UNIQUE(hackathon_id, team_id)
	);`)
}

func createRuleTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE competition_rules (
		id TEXT PRIMARY KEY,
		hackathon_id TEXT NOT NULL,
		rule_type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		definition TEXT,
		is_mandatory BOOLEAN,
		penalty TEXT,
		display_order INTEGER,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE rule_violations (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		rule_id TEXT NOT NULL,
		detection_method TEXT NOT NULL,
		description TEXT,
		status TEXT NOT NULL,
		reviewed_by TEXT,
		reviewed_at DATETIME,
		action_taken TEXT,
		detected_at DATETIME
	);`)
}

func createSubmissionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE submissions (
		id TEXT PRIMARY KEY,
		user_id TEXT,
		team_id TEXT,
		quest_id TEXT,
		hackathon_id TEXT,
		title TEXT NOT NULL,
		submission_url TEXT NOT NULL,
		description TEXT,
		verification_status TEXT NOT NULL,
		score REAL,
		feedback TEXT,
		attempt_number INTEGER,
		submitted_at DATETIME,
		verified_at DATETIME,
		verified_by TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE judge_scores (
		id TEXT PRIMARY KEY,
		submission_id TEXT NOT NULL,
		judge_id TEXT NOT NULL,
		technical_score REAL DEFAULT 0,
		commercial_score REAL DEFAULT 0,
		operational_score REAL DEFAULT 0,
		overall_score REAL DEFAULT 0,
		feedback TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(submission_id, judge_id)
	);`)
}

func createQuestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE quests (
		id TEXT PRIMARY KEY,
		hackathon_id TEXT,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		quest_type TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		xp_reward INTEGER,
		estimated_time_minutes INTEGER,
		tags TEXT,
		is_active BOOLEAN,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createNotificationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		recipient_id TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT,
		is_read BOOLEAN,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE advancement_logs (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL,
		from_phase_id TEXT,
		to_phase_id TEXT,
		decision TEXT NOT NULL,
		decided_by TEXT,
		notes TEXT,
		decided_at DATETIME
	);`)
}
