package v1

import (
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
)

// registerInput преобразует DTO регистрации во входные данные сервиса
func registerInput(dto RegisterRequest) service.RegisterInput {
	return service.RegisterInput{
		Name:              dto.Name,
		Email:             dto.Email,
		Password:          dto.Password,
		Phone:             dto.Phone,
		PreferredLanguage: dto.PreferredLanguage,
	}
}

// UserToResponse преобразует пользователя в DTO без чувствительных полей
func UserToResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name,
		Phone:             user.Phone,
		PreferredLanguage: user.PreferredLanguage,
		Role:              user.Role,
		MFAEnabled:        user.MFAEnabled,
		BiometricEnabled:  user.BiometricEnabled,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

// CreateRequestToIncident преобразует DTO создания в доменную модель
func CreateRequestToIncident(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Type:        dto.Type,
		Urgency:     dto.Urgency,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Description: dto.Description,
		Perpetrator: dto.Perpetrator,
		Witnesses:   dto.Witnesses,
		Notes:       dto.Notes,
		Anonymous:   dto.Anonymous,
		Status:      dto.Status,
	}
	// Согласие по умолчанию - ни с кем не делиться
	if dto.Consent != nil {
		incident.Consent = models.Consent{
			Vault: dto.Consent.Vault,
			NGO:   dto.Consent.NGO,
			Court: dto.Consent.Court,
		}
	}
	return incident
}

// UpdateRequestToPatch преобразует DTO обновления в merge-patch
func UpdateRequestToPatch(dto UpdateIncidentRequest) service.IncidentPatch {
	patch := service.IncidentPatch{
		Type:        dto.Type,
		Urgency:     dto.Urgency,
		Location:    dto.Location,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Description: dto.Description,
		Perpetrator: dto.Perpetrator,
		Witnesses:   dto.Witnesses,
		Notes:       dto.Notes,
		Anonymous:   dto.Anonymous,
		Status:      dto.Status,
	}
	if dto.Consent != nil {
		patch.Consent = &models.Consent{
			Vault: dto.Consent.Vault,
			NGO:   dto.Consent.NGO,
			Court: dto.Consent.Court,
		}
	}
	return patch
}

// IncidentToResponse преобразует доменную модель в DTO для ответа
func IncidentToResponse(incident *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:          incident.ID,
		UserID:      incident.UserID,
		Type:        incident.Type,
		Urgency:     incident.Urgency,
		Location:    incident.Location,
		Latitude:    incident.Latitude,
		Longitude:   incident.Longitude,
		Description: incident.Description,
		Perpetrator: incident.Perpetrator,
		Witnesses:   incident.Witnesses,
		Notes:       incident.Notes,
		Anonymous:   incident.Anonymous,
		Consent: ConsentDTO{
			Vault: incident.Consent.Vault,
			NGO:   incident.Consent.NGO,
			Court: incident.Consent.Court,
		},
		Status:    incident.Status,
		CreatedAt: incident.CreatedAt,
		UpdatedAt: incident.UpdatedAt,
	}
}

// IncidentsToResponses преобразует слайс моделей в слайс DTO
func IncidentsToResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = IncidentToResponse(incident)
	}
	return responses
}

// EvidenceToResponse преобразует улику в DTO с метаданными
func EvidenceToResponse(evidence *models.Evidence) *EvidenceResponse {
	return &EvidenceResponse{
		ID:           evidence.ID,
		IncidentID:   evidence.IncidentID,
		FileType:     evidence.FileType,
		OriginalName: evidence.OriginalName,
		MimeType:     evidence.MimeType,
		SizeBytes:    evidence.SizeBytes,
		CreatedAt:    evidence.CreatedAt,
	}
}

// EvidenceListToResponses преобразует слайс улик в слайс DTO
func EvidenceListToResponses(items []*models.Evidence) []*EvidenceResponse {
	responses := make([]*EvidenceResponse, len(items))
	for i, item := range items {
		responses[i] = EvidenceToResponse(item)
	}
	return responses
}

// CreateRequestToLegalCase преобразует DTO создания в доменную модель
func CreateRequestToLegalCase(dto CreateLegalCaseRequest) *models.LegalCase {
	return &models.LegalCase{
		IncidentID:    dto.IncidentID,
		CaseType:      dto.CaseType,
		LawyerName:    dto.LawyerName,
		Notes:         dto.Notes,
		NextHearingAt: dto.NextHearingAt,
	}
}

// UpdateRequestToLegalCasePatch преобразует DTO обновления в merge-patch
func UpdateRequestToLegalCasePatch(dto UpdateLegalCaseRequest) service.LegalCasePatch {
	return service.LegalCasePatch{
		CaseType:      dto.CaseType,
		Status:        dto.Status,
		LawyerName:    dto.LawyerName,
		Notes:         dto.Notes,
		NextHearingAt: dto.NextHearingAt,
	}
}

// LegalCaseToResponse преобразует доменную модель в DTO для ответа
func LegalCaseToResponse(legalCase *models.LegalCase) *LegalCaseResponse {
	return &LegalCaseResponse{
		ID:            legalCase.ID,
		UserID:        legalCase.UserID,
		IncidentID:    legalCase.IncidentID,
		CaseType:      legalCase.CaseType,
		Status:        legalCase.Status,
		LawyerName:    legalCase.LawyerName,
		Notes:         legalCase.Notes,
		NextHearingAt: legalCase.NextHearingAt,
		CreatedAt:     legalCase.CreatedAt,
		UpdatedAt:     legalCase.UpdatedAt,
	}
}

// LegalCasesToResponses преобразует слайс дел в слайс DTO
func LegalCasesToResponses(cases []*models.LegalCase) []*LegalCaseResponse {
	responses := make([]*LegalCaseResponse, len(cases))
	for i, legalCase := range cases {
		responses[i] = LegalCaseToResponse(legalCase)
	}
	return responses
}
