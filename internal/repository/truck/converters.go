package truck

import "freight/internal/entities"

func ToDomain(t *TruckDB) *entities.Truck {
	if t == nil {
		return nil
	}
	return &entities.Truck{
		ID:         t.ID,
		CreatedBy:  t.CreatedBy,
		AssignedTo: t.AssignedTo,
		Name:       t.Name,
		Type:       entities.TruckType(t.Type),
		Status:     entities.TruckStatus(t.Status),
		Capacity: entities.TruckCapacity{
			Width:   t.Width,
			Length:  t.Length,
			Height:  t.Height,
			Payload: t.Payload,
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromDomain(t *entities.Truck) *TruckDB {
	if t == nil {
		return nil
	}
	return &TruckDB{
		ID:         t.ID,
		CreatedBy:  t.CreatedBy,
		AssignedTo: t.AssignedTo,
		Name:       t.Name,
		Type:       t.Type.String(),
		Status:     t.Status.String(),
		Width:      t.Capacity.Width,
		Length:     t.Capacity.Length,
		Height:     t.Capacity.Height,
		Payload:    t.Capacity.Payload,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func ToDomainList(trucks []TruckDB) []entities.Truck {
	res := make([]entities.Truck, 0, len(trucks))
	for i := range trucks {
		res = append(res, *ToDomain(&trucks[i]))
	}
	return res
}
