package messages

type MessageReceived struct {
	MessageID int64
	Email     string
	Subject   string
}

func (e MessageReceived) Type() string {
	return "MessageReceived"
}

type MessageReplied struct {
	MessageID int64
	Email     string
}

func (e MessageReplied) Type() string {
	return "MessageReplied"
}

type MessageDeleted struct {
	MessageID int64
}

func (e MessageDeleted) Type() string {
	return "MessageDeleted"
}
