package bot

// Message is an inbound chat message delivered by a transport. Chat
// identifies where the reply goes; ID is the transport's message id and is
// only used for log correlation.
type Message struct {
	ID   string `json:"id"`
	Chat string `json:"chat"`
	Text string `json:"text"`
}

// Reply is the outbound answer to a Message.
type Reply struct {
	Chat string `json:"chat"`
	Text string `json:"text"`
}
