package http

import (
	"time"

	"portal-srv/internal/model"
	"portal-srv/internal/patient"
)

type existsReq struct {
	PatientID string `form:"patient_id"`
}

func (r existsReq) toInput() patient.ExistsInput {
	return patient.ExistsInput{PatientID: r.PatientID}
}

type existsResp struct {
	Exists bool   `json:"exists"`
	Source string `json:"source"`
}

type familyReq struct {
	PatientID string `form:"patient_id"`
}

func (r familyReq) toInput() patient.FamilyInput {
	return patient.FamilyInput{PatientID: r.PatientID}
}

type familyMemberResp struct {
	PatientID string `json:"patient_id"`
	Name      string `json:"name"`
	Relation  string `json:"relation"`
}

type familyResp struct {
	Members []familyMemberResp `json:"members"`
}

type profileReq struct {
	PatientID string `form:"patient_id"`
}

func (r profileReq) toInput() patient.GetProfileInput {
	return patient.GetProfileInput{PatientID: r.PatientID}
}

type updateProfileReq struct {
	PatientID string `json:"patient_id" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (r updateProfileReq) toInput() patient.UpdateProfileInput {
	return patient.UpdateProfileInput{
		PatientID: r.PatientID,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

type profileResp struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	BirthDate string `json:"birth_date,omitempty"`
	Gender    string `json:"gender,omitempty"`
}

func newFamilyResp(members []model.FamilyMember) familyResp {
	resp := familyResp{Members: make([]familyMemberResp, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, familyMemberResp{
			PatientID: m.PatientID,
			Name:      m.Name,
			Relation:  m.Relation,
		})
	}
	return resp
}

func newProfileResp(p model.Patient) profileResp {
	resp := profileResp{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
		Gender:  p.Gender,
	}
	if !p.BirthDate.IsZero() {
		resp.BirthDate = p.BirthDate.UTC().Format(time.DateOnly)
	}
	return resp
}
