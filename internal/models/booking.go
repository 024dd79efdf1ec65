package models

import "strings"

// BookingFieldEmail is the field bookings are looked up by
const BookingFieldEmail = "email"

// BookingRequest is the payload of a tutor booking. It is stored verbatim;
// the only requirement is an email identifying the booking user.
type BookingRequest map[string]interface{}

// Email returns the trimmed booking email, or "" when absent or not a string
func (b BookingRequest) Email() string {
	email, _ := b[BookingFieldEmail].(string)
	return strings.TrimSpace(email)
}

// Validate reports the first missing required field
func (b BookingRequest) Validate() *FieldError {
	if b.Email() == "" {
		return &FieldError{Field: BookingFieldEmail, Message: "email is required"}
	}
	return nil
}

// Document returns the booking as a document to insert. A client-supplied
// _id is dropped so the store always assigns the identifier.
func (b BookingRequest) Document() Document {
	doc := make(Document, len(b))
	for k, v := range b {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	return doc
}
