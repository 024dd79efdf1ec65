package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Tutor document field names
const (
	TutorFieldLanguage    = "language"
	TutorFieldName        = "name"
	TutorFieldEmail       = "email"
	TutorFieldImage       = "image"
	TutorFieldDescription = "description"
	TutorFieldPrice       = "price"
	TutorFieldRating      = "rating"
	TutorFieldDetails     = "details"
	TutorFieldReview      = "review"
)

// TutorFieldNames is the set of fields a replace writes, in document order
var TutorFieldNames = []string{
	TutorFieldLanguage,
	TutorFieldName,
	TutorFieldEmail,
	TutorFieldImage,
	TutorFieldDescription,
	TutorFieldPrice,
	TutorFieldRating,
	TutorFieldDetails,
	TutorFieldReview,
}

// TutorRequest is the payload of a tutor profile write. Values keep the
// type the client sent them with; the contact email owns the profile for
// the /mytutors lookup.
type TutorRequest map[string]interface{}

// Language returns the language value when it is a string
func (r TutorRequest) Language() string {
	language, _ := r[TutorFieldLanguage].(string)
	return language
}

// Document returns the payload as a document to insert, every submitted
// field included. A client-supplied _id is dropped.
func (r TutorRequest) Document() Document {
	doc := make(Document, len(r))
	for k, v := range r {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	return doc
}

// Fields returns the tutor fields for the $set of a replace. Fields the
// payload omits are set to null; anything outside TutorFieldNames is ignored.
func (r TutorRequest) Fields() bson.D {
	fields := make(bson.D, 0, len(TutorFieldNames))
	for _, name := range TutorFieldNames {
		fields = append(fields, bson.E{Key: name, Value: r[name]})
	}
	return fields
}

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
