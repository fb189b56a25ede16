package protocol

type MessageType uint8

const (
	MessageTypeData  MessageType = 1
	MessageTypeAck   MessageType = 2
	MessageTypePing  MessageType = 3
	MessageTypeClose MessageType = 4
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeData:
		return "DATA"
	case MessageTypeAck:
		return "ACK"
	case MessageTypePing:
		return "PING"
	case MessageTypeClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}
