package fakebackend

import (
	"odontocare-client/internal/app/models"
	"strconv"
)

func patientFixture(userID int64) models.Patient {
	return models.Patient{UserID: userID, Name: "Ana"}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
