package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Department string

const (
	DepartmentSales   Department = "sales"
	DepartmentService Department = "service"
)

func (d Department) IsValid() bool {
	switch d {
	case DepartmentSales, DepartmentService:
		return true
	}

	return false
}

func (d Department) String() string {
	return string(d)
}

// AuditTimeLayout is dd.mm.yyyy HH:MM.
const AuditTimeLayout = "02.01.2006 15:04"

type JournalRecord struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Department Department
	IsPriority bool
	ClientID   *uuid.UUID
	Client     *Client
	Phone      string
	VehicleID  *uuid.UUID
	Vehicle    *Vehicle
	ServiceID  *uuid.UUID
	Service    *Service
	Services   []Service
	Comment    string
}

type CreateRecordInput struct {
	Department Department
	Client     ClientInput
	Vehicle    VehicleInput
	ServiceID  *uuid.UUID
	ServiceIDs []uuid.UUID
	Comment    string `validate:"max=10000"`
}

type JournalFilter struct {
	Department Department
	Search     string
	Order      Order
	Limit      uint64
	Offset     uint64
}

// AuditHeader renders the line that precedes every comment block.
func AuditHeader(actor string, at time.Time) string {
	return fmt.Sprintf("[ADD][%s][%s]", actor, at.Format(AuditTimeLayout))
}

// CommentBlock is a header followed by the comment text on the next line.
func CommentBlock(header, text string) string {
	return header + "\n" + text
}

// AppendComment appends a block to the existing comment, separated by a blank line.
func AppendComment(prior, block string) string {
	if prior == "" {
		return block
	}

	return prior + "\n\n" + block
}
