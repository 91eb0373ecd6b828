package models

// Location is a geographic point with an optional address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Category is a service category.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

type FixerSkill struct {
	CategoryID        string `json:"categoryId"`
	CustomDescription string `json:"customDescription,omitempty"`
}

type FixerSkillInfo struct {
	Category          Category `json:"category"`
	Description       string   `json:"description"`
	CustomDescription string   `json:"customDescription,omitempty"`
	Source            string   `json:"source"` // personal | general
}

type PaymentAccount struct {
	Holder        string `json:"holder"`
	AccountNumber string `json:"accountNumber"`
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentQR   PaymentMethod = "qr"
	PaymentCash PaymentMethod = "cash"
)

// Fixer is a service provider profile.
type Fixer struct {
	ID              string                           `json:"id"`
	UserID          string                           `json:"userId"`
	CI              string                           `json:"ci,omitempty"`
	Location        *Location                        `json:"location,omitempty"`
	Categories      []string                         `json:"categories,omitempty"`
	Skills          []FixerSkill                     `json:"skills,omitempty"`
	CategoriesInfo  []Category                       `json:"categoriesInfo,omitempty"`
	SkillsInfo      []FixerSkillInfo                 `json:"skillsInfo,omitempty"`
	PaymentMethods  []PaymentMethod                  `json:"paymentMethods,omitempty"`
	PaymentAccounts map[PaymentMethod]PaymentAccount `json:"paymentAccounts,omitempty"`
	TermsAccepted   bool                             `json:"termsAccepted,omitempty"`
	CreatedAt       string                           `json:"createdAt"`
	UpdatedAt       string                           `json:"updatedAt"`
	Name            string                           `json:"name,omitempty"`
	City            string                           `json:"city,omitempty"`
	PhotoURL        string                           `json:"photoUrl,omitempty"`
	WhatsApp        string                           `json:"whatsapp,omitempty"`
	Bio             string                           `json:"bio,omitempty"`
	JobsCount       int                              `json:"jobsCount,omitempty"`
	RatingAvg       float64                          `json:"ratingAvg,omitempty"`
	RatingCount     int                              `json:"ratingCount,omitempty"`
	MemberSince     string                           `json:"memberSince,omitempty"`
}

// FixersByCategory groups fixers under one category.
type FixersByCategory struct {
	Category Category `json:"category"`
	Total    int      `json:"total"`
	Fixers   []Fixer  `json:"fixers"`
}

type CreateFixerInput struct {
	UserID   string    `json:"userId"`
	CI       string    `json:"ci"`
	City     string    `json:"city,omitempty"`
	Location *Location `json:"location,omitempty"`
}

type UpdateCategoriesInput struct {
	Categories []string     `json:"categories"`
	Skills     []FixerSkill `json:"skills,omitempty"`
	Bio        string       `json:"bio,omitempty"`
}

type UpdatePaymentsInput struct {
	Methods  []PaymentMethod                  `json:"methods"`
	Accounts map[PaymentMethod]PaymentAccount `json:"accounts,omitempty"`
}

// CICheck is the uniqueness answer for an identity document number.
type CICheck struct {
	Unique  bool   `json:"unique"`
	Message string `json:"message"`
}
