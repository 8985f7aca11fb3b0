package load

import "freight/internal/entities"

func ToDomain(l *LoadDB) *entities.Load {
	if l == nil {
		return nil
	}
	return &entities.Load{
		ID:         l.ID,
		CreatedBy:  l.CreatedBy,
		AssignedTo: l.AssignedTo,
		TruckID:    l.TruckID,
		Status:     entities.LoadStatus(l.Status),
		State:      entities.LoadState(l.State),
		Dimensions: entities.Dimensions{
			Width:  l.Width,
			Length: l.Length,
			Height: l.Height,
		},
		Payload:         l.Payload,
		PickupAddress:   l.PickupAddress,
		DeliveryAddress: l.DeliveryAddress,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func FromDomain(l *entities.Load) *LoadDB {
	if l == nil {
		return nil
	}
	return &LoadDB{
		ID:              l.ID,
		CreatedBy:       l.CreatedBy,
		AssignedTo:      l.AssignedTo,
		TruckID:         l.TruckID,
		Status:          l.Status.String(),
		State:           l.State.String(),
		Width:           l.Dimensions.Width,
		Length:          l.Dimensions.Length,
		Height:          l.Dimensions.Height,
		Payload:         l.Payload,
		PickupAddress:   l.PickupAddress,
		DeliveryAddress: l.DeliveryAddress,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func ToDomainLogs(logs []LoadLogDB) []entities.LoadLog {
	res := make([]entities.LoadLog, 0, len(logs))
	for _, l := range logs {
		res = append(res, entities.LoadLog{
			Message: l.Message,
			Time:    l.CreatedAt,
		})
	}
	return res
}
