package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Insight is the structured AI-generated summary derived from one
// analysis run over a Report. Created exactly once per successful run,
// never mutated. Re-analyzing a report produces a new Insight; there is
// no uniqueness constraint on report_id.
//
// Insights are intentionally NOT cascade-deleted with their report: the
// summary history survives the document.
type Insight struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReportID uuid.UUID `gorm:"type:uuid;not null;index" json:"reportId"`
	// UserID is copied from the report at creation time.
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_insights_user_created,priority:1" json:"userId"`

	// EnglishSummary and UrduSummary are never empty in a persisted row;
	// the normalizer substitutes placeholders when the model reply could
	// not be parsed.
	EnglishSummary  string                     `gorm:"column:english_summary;not null" json:"englishSummary"`
	UrduSummary     string                     `gorm:"column:urdu_summary;not null" json:"urduSummary"`
	DoctorQuestions datatypes.JSONSlice[string] `gorm:"column:doctor_questions" json:"doctorQuestions"`
	FoodSuggestions datatypes.JSONSlice[string] `gorm:"column:food_suggestions" json:"foodSuggestions"`
	HomeRemedies    datatypes.JSONSlice[string] `gorm:"column:home_remedies" json:"homeRemedies"`
	Disclaimer      string                     `gorm:"column:disclaimer;not null" json:"disclaimer"`

	// RawResponse keeps whatever the model returned, for audit/debug. It
	// is a superset of the canonical fields.
	RawResponse datatypes.JSON `gorm:"type:jsonb;column:raw_response" json:"rawResponse,omitempty"`

	// constraint:- keeps migration from emitting a DB foreign key; a
	// report must stay deletable while its insights remain.
	Report *Report `gorm:"foreignKey:ReportID;references:ID;constraint:-" json:"file,omitempty"`

	CreatedAt time.Time `gorm:"not null;index:idx_insights_user_created,priority:2" json:"createdAt"`
}

func (Insight) TableName() string { return "insights" }
