// Seeds the MongoDB clinic collections with a small demo dataset so the
// structured query pipeline has data to answer from.
package main

import (
	"context"
	"log"
	"time"

	"github.com/fatih/color"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinic-assistant-be/internal/config"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		log.Fatalf("Unable to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.Mongo.Database)

	seed := map[string][]interface{}{
		"doctors": {
			bson.M{"name": "Dr. Asha Rao", "specialization": "Cardiology", "email": "asha.rao@clinic.example", "phone": "+91-98100-11001", "experience": "12 years", "qualification": "MD, DM Cardiology"},
			bson.M{"name": "Dr. Vikram Lim", "specialization": "Dermatology", "email": "vikram.lim@clinic.example", "phone": "+91-98100-11002", "experience": "8 years", "qualification": "MD Dermatology"},
			bson.M{"name": "Dr. Meera Shah", "specialization": "Pediatrics", "email": "meera.shah@clinic.example", "phone": "+91-98100-11003", "experience": "15 years", "qualification": "MD Pediatrics"},
		},
		"clinic": {
			bson.M{"name": "City Heart Clinic", "address": "14 Lake Road", "phone": "+91-11-2345-0001", "timings": "Mon-Sat 09:00-18:00"},
			bson.M{"name": "Sunrise Family Clinic", "address": "2 Hill Street", "phone": "+91-11-2345-0002", "timings": "Mon-Fri 08:30-17:00"},
		},
		"slots": {
			bson.M{"doctorName": "Dr. Asha Rao", "dayOfWeek": "Monday", "startTime": "09:00", "endTime": "12:00", "maxPatients": 12},
			bson.M{"doctorName": "Dr. Asha Rao", "dayOfWeek": "Wednesday", "startTime": "14:00", "endTime": "17:00", "maxPatients": 10},
			bson.M{"doctorName": "Dr. Vikram Lim", "dayOfWeek": "Monday", "startTime": "10:00", "endTime": "13:00", "maxPatients": 8},
			bson.M{"doctorName": "Dr. Meera Shah", "dayOfWeek": "Friday", "startTime": "09:30", "endTime": "12:30", "maxPatients": 15},
		},
		"notices": {
			bson.M{"title": "Flu Vaccination Drive", "message": "Walk-in flu shots available all of next week", "createdAt": time.Now().AddDate(0, 0, -2).Format(time.RFC3339)},
			bson.M{"title": "New Pediatric Wing", "message": "The pediatric wing reopens after renovation on the 1st", "createdAt": time.Now().AddDate(0, 0, -10).Format(time.RFC3339)},
		},
		"appointments": {
			bson.M{"patientName": "Rohan Gupta", "doctorName": "Dr. Asha Rao", "date": "2026-09-07", "time": "09:30", "status": "confirmed"},
		},
		"slotexception": {
			bson.M{"reason": "Independence Day holiday", "date": "2026-08-15"},
			bson.M{"reason": "Staff training, morning slots closed", "date": "2026-09-03"},
		},
	}

	for name, docs := range seed {
		if err := db.Collection(name).Drop(ctx); err != nil {
			color.Yellow("could not drop %s: %v", name, err)
		}
		res, err := db.Collection(name).InsertMany(ctx, docs)
		if err != nil {
			color.Red("failed to seed %s: %v", name, err)
			continue
		}
		color.Green("seeded %s with %d documents", name, len(res.InsertedIDs))
	}

	color.Cyan("done")
}
