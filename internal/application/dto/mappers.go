package dto

import (
	"github.com/jhoicas/pg-hostel-api/internal/domain/entity"
	"github.com/jhoicas/pg-hostel-api/internal/domain/housing"
)

// FromUser convierte la entidad a su salida pública (nunca incluye el hash).
func FromUser(u *entity.User) UserResponse {
	out := UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		RoomNumber:  u.RoomNumber,
		PhoneNumber: u.PhoneNumber,
		ExitDate:    housing.FormatDate(u.ExitDate),
		IsRentPaid:  u.IsRentPaid,
		CreatedAt:   u.CreatedAt,
	}
	if !u.EntryDate.IsZero() {
		out.EntryDate = u.EntryDate.Format(housing.DateLayout)
	}
	return out
}

// FromComplaint convierte una queja.
func FromComplaint(c *entity.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:           c.ID,
		ResidentID:   c.ResidentID,
		ResidentName: c.ResidentName,
		Type:         c.Type,
		Description:  c.Description,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromNotice convierte un anuncio.
func FromNotice(n *entity.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedBy: n.CreatedBy,
		CreatedAt: n.CreatedAt,
	}
}
