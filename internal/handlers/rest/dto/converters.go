package dto

import "freight/internal/entities"

const notAssigned = "Not assigned"

func (l *LoadCreate) ToModify() entities.LoadModify {
	loadModify := entities.LoadModify{
		Payload:         l.Payload,
		PickupAddress:   l.PickupAddress,
		DeliveryAddress: l.DeliveryAddress,
	}
	if l.Dimensions != nil {
		loadModify.Dimensions = &entities.DimensionsModify{
			Width:  l.Dimensions.Width,
			Length: l.Dimensions.Length,
			Height: l.Dimensions.Height,
		}
	}
	return loadModify
}

func (l *LoadUpdate) ToModify() entities.LoadModify {
	return (*LoadCreate)(l).ToModify()
}

func FromLoad(l *entities.Load) Load {
	assignedTo := notAssigned
	if l.AssignedTo != nil {
		assignedTo = l.AssignedTo.String()
	}

	logs := make([]LoadLog, 0, len(l.Logs))
	for _, log := range l.Logs {
		logs = append(logs, LoadLog{Message: log.Message, Time: log.Time})
	}

	return Load{
		ID:         l.ID.String(),
		AssignedTo: assignedTo,
		CreatedBy:  l.CreatedBy.String(),
		Status:     l.Status.String(),
		State:      l.State.String(),
		Logs:       logs,
		Dimensions: Dimensions{
			Width:  l.Dimensions.Width,
			Length: l.Dimensions.Length,
			Height: l.Dimensions.Height,
		},
		Payload:         l.Payload,
		CreatedAt:       l.CreatedAt,
		PickupAddress:   l.PickupAddress,
		DeliveryAddress: l.DeliveryAddress,
	}
}

func FromLoadList(loads []entities.Load) []Load {
	res := make([]Load, 0, len(loads))
	for i := range loads {
		res = append(res, FromLoad(&loads[i]))
	}
	return res
}

func FromTruck(t *entities.Truck) Truck {
	var assignedTo *string
	if t.AssignedTo != nil {
		id := t.AssignedTo.String()
		assignedTo = &id
	}

	return Truck{
		ID:         t.ID.String(),
		CreatedBy:  t.CreatedBy.String(),
		AssignedTo: assignedTo,
		Name:       t.Name,
		Type:       t.Type.String(),
		Status:     t.Status.String(),
		Dimensions: Dimensions{
			Width:  t.Capacity.Width,
			Length: t.Capacity.Length,
			Height: t.Capacity.Height,
		},
		Payload:   t.Capacity.Payload,
		CreatedAt: t.CreatedAt,
	}
}

func FromTruckList(trucks []entities.Truck) []Truck {
	res := make([]Truck, 0, len(trucks))
	for i := range trucks {
		res = append(res, FromTruck(&trucks[i]))
	}
	return res
}
