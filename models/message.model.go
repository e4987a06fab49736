package models

const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// InquiryOptions adalah jenis pertanyaan pada form kontak.
var InquiryOptions = []Option{
	{FilterAll, "All Types"},
	{"general", "General Information"},
	{"product", "Product Inquiry"},
	{"medical", "Medical Information"},
	{"business", "Business Partnership"},
	{"distribution", "Distribution Opportunity"},
	{"adverse", "Adverse Event Reporting"},
	{"quality", "Quality Complaint"},
	{"regulatory", "Regulatory Inquiry"},
	{"other", "Other"},
}

// ContactMessage mendefinisikan pesan yang masuk dari form kontak.
type ContactMessage struct {
	ID          int64  `json:"id" bson:"_id" yaml:"id" csv:"id"`
	Name        string `json:"name" bson:"name" yaml:"name" csv:"name"`
	Email       string `json:"email" bson:"email" yaml:"email" csv:"email"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty" yaml:"phone" csv:"phone"`
	Company     string `json:"company,omitempty" bson:"company,omitempty" yaml:"company" csv:"company"`
	Country     string `json:"country" bson:"country" yaml:"country" csv:"country"`
	InquiryType string `json:"inquiryType" bson:"inquiry_type" yaml:"inquiryType" csv:"inquiry_type"`
	Subject     string `json:"subject" bson:"subject" yaml:"subject" csv:"subject"`
	Message     string `json:"message" bson:"message" yaml:"message" csv:"message"`
	Status      string `json:"status" bson:"status" yaml:"status" csv:"status"`
	Priority    string `json:"priority" bson:"priority" yaml:"priority" csv:"priority"`
	CreatedAt   string `json:"createdAt" bson:"created_at" yaml:"createdAt" csv:"created_at"`
	UpdatedAt   string `json:"updatedAt" bson:"updated_at" yaml:"updatedAt" csv:"updated_at"`
}

// ContactPayload adalah body JSON dari form kontak publik, juga yang diteruskan ke spreadsheet.
type ContactPayload struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Country     string `json:"country,omitempty"`
	InquiryType string `json:"inquiryType,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Message     string `json:"message" binding:"required"`
}

// MessageUpdate menampung perubahan status/prioritas oleh admin.
type MessageUpdate struct {
	Status   *string `json:"status,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// ReplyRequest adalah balasan admin untuk sebuah pesan.
type ReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}
