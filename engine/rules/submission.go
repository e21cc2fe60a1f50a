package rules

import "rail-madad/domain"

// The submission flow keeps its own, slightly different taxonomy (damage and
// electrical instead of maintenance, no food/ticketing). The two tables are
// deliberately NOT merged: unifying them would change observed
// categorization behavior, and any unification is a product decision.

// SubmissionRule is one submission-flow category with its keyword set.
type SubmissionRule struct {
	Name     domain.Category
	Keywords []string
}

// SubmissionCategories is scanned in declaration order and the first
// category with any keyword hit wins.
var SubmissionCategories = []SubmissionRule{
	{domain.CategoryCleanliness, []string{"dirty", "trash", "unclean", "garbage", "filthy", "messy"}},
	{domain.CategoryDamage, []string{"broken", "damaged", "cracked", "torn", "ripped", "not working"}},
	{domain.CategoryStaffBehavior, []string{"rude", "unhelpful", "impolite", "arrogant", "staff"}},
	{domain.CategorySafety, []string{"unsafe", "danger", "hazard", "emergency", "risk"}},
	{domain.CategoryElectrical, []string{"light", "fan", "ac", "electric", "power"}},
}

// SubmissionUrgencyKeywords force the high tier in the submission urgency
// policy. The submission flow never reaches emergency.
var SubmissionUrgencyKeywords = []string{"urgent", "emergency", "critical", "immediate", "asap", "now"}

// DepartmentMap routes a submission category to its responsible department.
var DepartmentMap = map[domain.Category]string{
	domain.CategoryCleanliness:   "Housekeeping",
	domain.CategoryDamage:        "Maintenance",
	domain.CategoryStaffBehavior: "Human Resources",
	domain.CategorySafety:        "Safety Department",
	domain.CategoryElectrical:    "Electrical Department",
	domain.CategoryOther:         "General Administration",
}

// FallbackDepartment is used when a category has no mapping.
const FallbackDepartment = "General Administration"
