package models

// CompanyInfo menampung teks profil perusahaan.
type CompanyInfo struct {
	Mission string   `json:"mission" yaml:"mission" binding:"required"`
	Vision  string   `json:"vision" yaml:"vision" binding:"required"`
	Values  []string `json:"values" yaml:"values"`
	Story   string   `json:"story" yaml:"story"`
}

// LeadershipMember adalah anggota tim pimpinan.
type LeadershipMember struct {
	ID         int64  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name" binding:"required"`
	Position   string `json:"position" yaml:"position" binding:"required"`
	Experience string `json:"experience" yaml:"experience"`
	Education  string `json:"education" yaml:"education"`
}

// Facility adalah lokasi operasional perusahaan.
type Facility struct {
	ID        int64  `json:"id" yaml:"id"`
	Location  string `json:"location" yaml:"location" binding:"required"`
	Address   string `json:"address" yaml:"address"`
	Type      string `json:"type" yaml:"type"`
	Employees int    `json:"employees" yaml:"employees"`
}

// FeaturedSlide adalah satu slide di carousel produk unggulan.
type FeaturedSlide struct {
	ID    int64  `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Image string `json:"image" yaml:"image"`
}
