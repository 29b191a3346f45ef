package domain

import "time"

// Gender is the self-reported gender on the user profile.
// @Description Gender: Male, Female or Other.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// RiskFlag names one of the ten tracked family-history conditions.
// @Description Family-history condition key.
type RiskFlag string

const (
	RiskHeartDisease  RiskFlag = "heart_disease"
	RiskDiabetes      RiskFlag = "diabetes"
	RiskHypertension  RiskFlag = "hypertension"
	RiskCancer        RiskFlag = "cancer"
	RiskAsthma        RiskFlag = "asthma"
	RiskObesity       RiskFlag = "obesity"
	RiskStroke        RiskFlag = "stroke"
	RiskAlzheimer     RiskFlag = "alzheimer"
	RiskOsteoporosis  RiskFlag = "osteoporosis"
	RiskKidneyDisease RiskFlag = "kidney_disease"
)

// RiskFlags lists every tracked condition in canonical order. Aggregations
// iterate this slice so that derived risk sets are deterministically ordered.
var RiskFlags = []RiskFlag{
	RiskHeartDisease,
	RiskDiabetes,
	RiskHypertension,
	RiskCancer,
	RiskAsthma,
	RiskObesity,
	RiskStroke,
	RiskAlzheimer,
	RiskOsteoporosis,
	RiskKidneyDisease,
}

// FamilyHistory is a closed record of the ten tracked conditions. Every flag
// is always present; there is no sparse representation and no way to attach
// a condition outside this set.
// @Description Boolean flags for the ten tracked family-history conditions.
type FamilyHistory struct {
	HeartDisease  bool `gorm:"not null;default:false" json:"heart_disease"`
	Diabetes      bool `gorm:"not null;default:false" json:"diabetes"`
	Hypertension  bool `gorm:"not null;default:false" json:"hypertension"`
	Cancer        bool `gorm:"not null;default:false" json:"cancer"`
	Asthma        bool `gorm:"not null;default:false" json:"asthma"`
	Obesity       bool `gorm:"not null;default:false" json:"obesity"`
	Stroke        bool `gorm:"not null;default:false" json:"stroke"`
	Alzheimer     bool `gorm:"not null;default:false" json:"alzheimer"`
	Osteoporosis  bool `gorm:"not null;default:false" json:"osteoporosis"`
	KidneyDisease bool `gorm:"not null;default:false" json:"kidney_disease"`
}

// flag returns a pointer to the field backing the given flag, or nil when
// the flag is not one of the ten tracked conditions.
func (h *FamilyHistory) flag(f RiskFlag) *bool {
	switch f {
	case RiskHeartDisease:
		return &h.HeartDisease
	case RiskDiabetes:
		return &h.Diabetes
	case RiskHypertension:
		return &h.Hypertension
	case RiskCancer:
		return &h.Cancer
	case RiskAsthma:
		return &h.Asthma
	case RiskObesity:
		return &h.Obesity
	case RiskStroke:
		return &h.Stroke
	case RiskAlzheimer:
		return &h.Alzheimer
	case RiskOsteoporosis:
		return &h.Osteoporosis
	case RiskKidneyDisease:
		return &h.KidneyDisease
	default:
		return nil
	}
}

// Flag reports whether the given condition is marked in the family history.
func (h *FamilyHistory) Flag(f RiskFlag) (bool, error) {
	p := h.flag(f)
	if p == nil {
		return false, ErrUnknownRiskFlag
	}
	return *p, nil
}

// Toggle flips exactly the given flag and leaves every other field untouched.
// Applying it twice restores the original record.
func (h *FamilyHistory) Toggle(f RiskFlag) error {
	p := h.flag(f)
	if p == nil {
		return ErrUnknownRiskFlag
	}
	*p = !*p
	return nil
}

// ActiveRisks returns the marked conditions in canonical order.
func (h *FamilyHistory) ActiveRisks() []RiskFlag {
	var active []RiskFlag
	for _, f := range RiskFlags {
		if on, _ := h.Flag(f); on {
			active = append(active, f)
		}
	}
	return active
}

// ActiveRiskCount returns the number of marked conditions, always in [0,10]
// and always equal to len(ActiveRisks()).
func (h *FamilyHistory) ActiveRiskCount() int {
	count := 0
	for _, f := range RiskFlags {
		if on, _ := h.Flag(f); on {
			count++
		}
	}
	return count
}

// profileRowID is the primary key of the single profile row. The profile is a
// per-deployment singleton: saves replace it wholesale, they never create a
// second record.
const profileRowID = 1

type UserProfile struct {
	ID                uint          `gorm:"primaryKey" json:"-"`
	Name              string        `gorm:"type:varchar(120);not null" json:"name"`
	Age               int           `gorm:"not null" json:"age"`
	HeightM           float64       `gorm:"column:height_m;not null" json:"height_m"`
	Gender            Gender        `gorm:"type:varchar(10);not null" json:"gender"`
	ChronicConditions string        `gorm:"type:text" json:"chronic_conditions"`
	FamilyHistory     FamilyHistory `gorm:"embedded;embeddedPrefix:fh_" json:"family_history"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "profile"
}

// DefaultProfile is the profile that exists before any save.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		ID:      profileRowID,
		Name:    "Alex Doe",
		Age:     28,
		HeightM: 1.75,
		Gender:  GenderMale,
		FamilyHistory: FamilyHistory{
			Hypertension: true,
		},
	}
}

// SaveProfileRequest is the request body for replacing the profile.
// @Description Request payload for a wholesale profile save.
type SaveProfileRequest struct {
	// Display name
	Name string `json:"name" validate:"required,max=120" example:"Alex Doe"`
	// Age in years
	Age int `json:"age" validate:"gte=0,lte=130" example:"28"`
	// Height in meters
	HeightM float64 `json:"height_m" validate:"required,gt=0,lte=3" example:"1.75"`
	// Gender
	Gender Gender `json:"gender" validate:"required,oneof=Male Female Other" example:"Male" enums:"Male,Female,Other"`
	// Free-text chronic condition notes
	ChronicConditions string `json:"chronic_conditions" validate:"max=2000" example:"mild asthma"`
	// Complete family-history record (all ten flags)
	FamilyHistory FamilyHistory `json:"family_history"`
}

// ToggleRiskRequest is the request body for flipping one family-history flag.
// @Description Request payload naming the flag to toggle.
type ToggleRiskRequest struct {
	// Condition key to flip
	Flag RiskFlag `json:"flag" validate:"required,oneof=heart_disease diabetes hypertension cancer asthma obesity stroke alzheimer osteoporosis kidney_disease" example:"hypertension"`
}

// ProfileResponse is the response body for profile endpoints.
// @Description Current profile with the derived risk summary.
type ProfileResponse struct {
	Name              string        `json:"name" example:"Alex Doe"`
	Age               int           `json:"age" example:"28"`
	HeightM           float64       `json:"height_m" example:"1.75"`
	Gender            Gender        `json:"gender" example:"Male"`
	ChronicConditions string        `json:"chronic_conditions" example:""`
	FamilyHistory     FamilyHistory `json:"family_history"`
	// Number of flagged family-history conditions (0-10)
	RiskCount int `json:"risk_count" example:"1"`
	// Flagged conditions in canonical order
	ActiveRisks []RiskFlag `json:"active_risks" example:"hypertension"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *UserProfile) ToResponse() ProfileResponse {
	return ProfileResponse{
		Name:              p.Name,
		Age:               p.Age,
		HeightM:           p.HeightM,
		Gender:            p.Gender,
		ChronicConditions: p.ChronicConditions,
		FamilyHistory:     p.FamilyHistory,
		RiskCount:         p.FamilyHistory.ActiveRiskCount(),
		ActiveRisks:       p.FamilyHistory.ActiveRisks(),
		UpdatedAt:         p.UpdatedAt,
	}
}

// ToProfile builds the replacement profile for a save. The row ID is pinned
// so a save can never grow a second profile row.
func (r *SaveProfileRequest) ToProfile() *UserProfile {
	return &UserProfile{
		ID:                profileRowID,
		Name:              r.Name,
		Age:               r.Age,
		HeightM:           r.HeightM,
		Gender:            r.Gender,
		ChronicConditions: r.ChronicConditions,
		FamilyHistory:     r.FamilyHistory,
	}
}
