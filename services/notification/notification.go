package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// ApprovalMessage is broadcast when an admin approves a labour profile
func ApprovalMessage(userID uint, labourID string) string {
	return fmt.Sprintf("User %d approved, labour ID %s issued.", userID, labourID)
}

// AttendanceMessage is broadcast when attendance is marked
func AttendanceMessage(labourID uint, date string, earnings int) string {
	return fmt.Sprintf("Labour %d marked for %s, earnings Rs.%d.", labourID, date, earnings)
}
