package domain

import "errors"

var ErrSpaceNotFound = errors.New("coworking space not found")

// CoworkingSpace is a workspace a user saved or was recommended.
// Price, Rating and InternetSpeed are free text ("₹800/day", "4.6", "300 Mbps").
type CoworkingSpace struct {
	ID            int64    `json:"id" bson:"_id"`
	UserID        int64    `json:"userId" bson:"user_id"`
	Name          string   `json:"name" bson:"name"`
	Location      string   `json:"location" bson:"location"`
	Price         string   `json:"price" bson:"price,omitempty"`
	Rating        string   `json:"rating" bson:"rating,omitempty"`
	Amenities     []string `json:"amenities" bson:"amenities"`
	InternetSpeed string   `json:"internetSpeed" bson:"internet_speed,omitempty"`
}
