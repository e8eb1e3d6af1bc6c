package postgres

import (
	"parceltrack/internal/domain/entity"
	"parceltrack/internal/infra/persistence/model"
)

func toParcelDomain(m *model.ParcelModel) *entity.Parcel {
	if m == nil {
		return nil
	}

	parcel := &entity.Parcel{
		ID:                    m.ID,
		TrackingNumber:        m.TrackingNumber,
		SourceAddress:         m.SourceAddress,
		DestinationAddress:    m.DestinationAddress,
		Description:           m.Description,
		Status:                entity.ParcelStatus(m.Status),
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		EstimatedDeliveryTime: m.EstimatedDeliveryTime,
		SenderID:              m.SenderID,
		SenderEmail:           m.SenderEmail,
		ReceiverID:            m.ReceiverID,
		ReceiverEmail:         m.ReceiverEmail,
	}
	if m.CurrentLatitude != nil && m.CurrentLongitude != nil {
		parcel.CurrentLocation = &entity.GeoPoint{Latitude: *m.CurrentLatitude, Longitude: *m.CurrentLongitude}
	}

	return parcel
}

func fromParcelDomain(p *entity.Parcel) *model.ParcelModel {
	m := &model.ParcelModel{
		ID:                    p.ID,
		TrackingNumber:        p.TrackingNumber,
		SourceAddress:         p.SourceAddress,
		DestinationAddress:    p.DestinationAddress,
		Description:           p.Description,
		Status:                string(p.Status),
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		EstimatedDeliveryTime: p.EstimatedDeliveryTime,
		SenderID:              p.SenderID,
		SenderEmail:           p.SenderEmail,
		ReceiverID:            p.ReceiverID,
		ReceiverEmail:         p.ReceiverEmail,
	}
	if p.CurrentLocation != nil {
		lat, lng := p.CurrentLocation.Latitude, p.CurrentLocation.Longitude
		m.CurrentLatitude, m.CurrentLongitude = &lat, &lng
	}

	return m
}

func toLocationHistoryDomain(m *model.LocationHistoryModel) *entity.LocationHistory {
	return &entity.LocationHistory{
		ID:          m.ID,
		ParcelID:    m.ParcelID,
		Location:    entity.GeoPoint{Latitude: m.Latitude, Longitude: m.Longitude},
		Timestamp:   m.Timestamp,
		Status:      entity.ParcelStatus(m.Status),
		Description: m.Description,
	}
}

func toShareDomain(m *model.SharedLocationModel) *entity.ShareableLocation {
	permissions := make([]entity.SharePermission, 0, len(m.Permissions))
	for _, p := range m.Permissions {
		permissions = append(permissions, entity.SharePermission(p))
	}

	return &entity.ShareableLocation{
		ID:              m.ID,
		ParcelID:        m.ParcelID,
		SharedBy:        m.SharedBy,
		SharedWith:      m.SharedWith,
		ExpiresAt:       m.ExpiresAt,
		Location:        entity.GeoPoint{Latitude: m.Latitude, Longitude: m.Longitude},
		TrackingNumber:  m.TrackingNumber,
		CreatedAt:       m.CreatedAt,
		IsActive:        m.IsActive,
		Permissions:     permissions,
		NotifyOnUpdates: m.NotifyOnUpdates,
	}
}

func fromShareDomain(s *entity.ShareableLocation) *model.SharedLocationModel {
	permissions := make([]string, 0, len(s.Permissions))
	for _, p := range s.Permissions {
		permissions = append(permissions, string(p))
	}

	return &model.SharedLocationModel{
		ID:              s.ID,
		ParcelID:        s.ParcelID,
		SharedBy:        s.SharedBy,
		SharedWith:      s.SharedWith,
		ExpiresAt:       s.ExpiresAt,
		Latitude:        s.Location.Latitude,
		Longitude:       s.Location.Longitude,
		TrackingNumber:  s.TrackingNumber,
		CreatedAt:       s.CreatedAt,
		IsActive:        s.IsActive,
		Permissions:     permissions,
		NotifyOnUpdates: s.NotifyOnUpdates,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Gender:      m.Gender,
		PhotoURL:    m.PhotoURL,
		FCMToken:    m.FCMToken,
		CreatedAt:   m.CreatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Gender:      u.Gender,
		PhotoURL:    u.PhotoURL,
		FCMToken:    u.FCMToken,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.CreatedAt,
	}
}

func toPreferencesDomain(m *model.UserPreferencesModel) *entity.Preferences {
	return &entity.Preferences{
		UserID:                  m.UserID,
		NotificationsEnabled:    m.NotificationsEnabled,
		DarkThemeEnabled:        m.DarkThemeEnabled,
		LocationTrackingEnabled: m.LocationTrackingEnabled,
		UpdatedAt:               m.UpdatedAt,
	}
}

func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	return &entity.Credential{
		UID:          m.UID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
