package catalog

type ProductCreated struct {
	ProductID int64
	Name      string
}

func (e ProductCreated) Type() string {
	return "ProductCreated"
}

type ProductUpdated struct {
	ProductID int64
	OldName   string
	NewName   string
}

func (e ProductUpdated) Type() string {
	return "ProductUpdated"
}

type ProductDeleted struct {
	ProductID int64
}

func (e ProductDeleted) Type() string {
	return "ProductDeleted"
}
