package models

// Kategori produk yang dikenal katalog.
const (
	CategoryAntibiotics      = "antibiotics"
	CategoryAnalgesics       = "analgesics"
	CategorySupplements      = "supplements"
	CategoryCardiovascular   = "cardiovascular"
	CategorySyrups           = "syrups"
	CategoryInjectables      = "injectables"
	CategoryGastrointestinal = "gastrointestinal"
)

// Bentuk sediaan yang ditampilkan di filter katalog. Daftar ini tidak tertutup.
const (
	TypeTablets    = "Tablets"
	TypeCapsules   = "Capsules"
	TypeSyrup      = "Syrup"
	TypeSuspension = "Suspension"
	TypeInjection  = "Injection"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// FilterAll adalah nilai sentinel yang berarti "jangan batasi dimensi ini".
const FilterAll = "all"

// DateLayout adalah format tanggal createdAt/updatedAt.
const DateLayout = "2006-01-02"

// Option adalah pasangan value/label untuk selector di frontend.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// CategoryOptions mengikuti urutan selector kategori di halaman produk.
var CategoryOptions = []Option{
	{FilterAll, "All Categories"},
	{CategoryAntibiotics, "Antibiotics"},
	{CategoryAnalgesics, "Pain Management"},
	{CategorySupplements, "Supplements"},
	{CategoryCardiovascular, "Cardiovascular"},
	{CategorySyrups, "Syrups & Liquids"},
	{CategoryInjectables, "Injectables"},
	{CategoryGastrointestinal, "Gastrointestinal"},
}

// TypeOptions mengikuti urutan selector bentuk sediaan.
var TypeOptions = []Option{
	{FilterAll, "All Types"},
	{TypeTablets, "Tablets"},
	{TypeCapsules, "Capsules"},
	{TypeSyrup, "Syrups"},
	{TypeSuspension, "Suspensions"},
	{TypeInjection, "Injections"},
}

// IsKnownCategory melaporkan apakah category termasuk himpunan kategori tertutup.
func IsKnownCategory(category string) bool {
	for _, o := range CategoryOptions[1:] {
		if o.Value == category {
			return true
		}
	}
	return false
}

// Product mendefinisikan struktur untuk produk.
type Product struct {
	ID          int64  `json:"id" bson:"_id" yaml:"id"`
	Name        string `json:"name" bson:"name" yaml:"name"`
	Category    string `json:"category" bson:"category" yaml:"category"`
	Type        string `json:"type" bson:"type" yaml:"type"`
	Description string `json:"description" bson:"description" yaml:"description"`
	Indication  string `json:"indication" bson:"indication" yaml:"indication"`
	Dosage      string `json:"dosage" bson:"dosage" yaml:"dosage"`
	Packaging   string `json:"packaging" bson:"packaging" yaml:"packaging"`
	Strength    string `json:"strength" bson:"strength" yaml:"strength"`
	Image       string `json:"image" bson:"image" yaml:"image"`
	Status      string `json:"status" bson:"status" yaml:"status"`
	CreatedAt   string `json:"createdAt" bson:"created_at" yaml:"createdAt"`
	UpdatedAt   string `json:"updatedAt" bson:"updated_at" yaml:"updatedAt"`
}

// ProductInput adalah payload untuk membuat produk baru.
type ProductInput struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Indication  string `json:"indication"`
	Dosage      string `json:"dosage"`
	Packaging   string `json:"packaging"`
	Strength    string `json:"strength"`
	Image       string `json:"image"`
	Status      string `json:"status"`
	ImageBase64 string `json:"imageBase64,omitempty"`
}

// ProductUpdate menampung field yang boleh diubah; nil berarti tidak diubah.
type ProductUpdate struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Type        *string `json:"type,omitempty"`
	Description *string `json:"description,omitempty"`
	Indication  *string `json:"indication,omitempty"`
	Dosage      *string `json:"dosage,omitempty"`
	Packaging   *string `json:"packaging,omitempty"`
	Strength    *string `json:"strength,omitempty"`
	Image       *string `json:"image,omitempty"`
	Status      *string `json:"status,omitempty"`
	ImageBase64 string  `json:"imageBase64,omitempty"`
}

// Stats mendefinisikan struktur untuk statistik dashboard admin.
type Stats struct {
	TotalProducts   int `json:"totalProducts"`
	ActiveProducts  int `json:"activeProducts"`
	UnreadMessages  int `json:"unreadMessages"`
	TotalCategories int `json:"totalCategories"`
}
