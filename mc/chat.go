package mc

import (
	"encoding/json"

	"github.com/Tnze/go-mc/chat"
)

// NewChatMessage builds a plain-text chat component, the common case for
// MOTDs and kick/disconnect reasons that carry no colour codes.
func NewChatMessage(text string) chat.Message {
	return chat.Message{Text: text}
}

// EncodeChat marshals a chat.Message to the String field the protocol
// expects wherever a Chat value is called for (status description, login
// disconnect reason, play disconnect reason, title text).
func EncodeChat(msg chat.Message) (String, error) {
	buf, err := json.Marshal(msg)
	if err != nil {
		return "", err
	}
	return String(buf), nil
}

// MustEncodeChat is EncodeChat for the configured templates this proxy
// itself builds, where a marshal failure would mean a programmer error
// rather than bad input.
func MustEncodeChat(msg chat.Message) String {
	s, err := EncodeChat(msg)
	if err != nil {
		panic(err)
	}
	return s
}
