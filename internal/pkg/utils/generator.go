package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GeneratePartnerTrxID builds the transaction id handed to the payment
// gateway. The gateway echoes it back on the callback, so it must be unique
// per payment session.
func GeneratePartnerTrxID() string {
	return uuid.NewString()
}

func GenerateObjectName(prefix, userID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, userID, timestamp, fileExtension)
}
