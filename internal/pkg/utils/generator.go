package utils

import (
	"crypto/rand"
	"math/big"
	"medora-portal/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

const patientIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateClientID() string {
	return uuid.New().String()
}

// GeneratePatientIDPreview builds MED<YYYYMMDD><6 base-36 characters>. The
// backend assigns the real id on creation; this is only shown on the form.
func GeneratePatientIDPreview(now time.Time) string {
	var sb strings.Builder
	sb.WriteString(constvars.PatientIDPrefix)
	sb.WriteString(now.Format("20060102"))

	max := big.NewInt(int64(len(patientIDAlphabet)))
	for i := 0; i < constvars.PatientIDRandomLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			sb.WriteByte(patientIDAlphabet[0])
			continue
		}
		sb.WriteByte(patientIDAlphabet[n.Int64()])
	}
	return sb.String()
}
