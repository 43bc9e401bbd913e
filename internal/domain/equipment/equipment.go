package equipment

import "fmt"

// Equipment is a physical asset under service, owned by a client and
// optionally tied to one of that client's contracts. Model, serial number
// and location are free text.
type Equipment struct {
	id           uint
	name         string
	equipType    string
	model        string
	serialNumber string
	location     string
	clientID     uint
	contractID   *uint
}

func NewEquipment(name, equipType, model, serialNumber, location string, clientID uint, contractID *uint) (*Equipment, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &Equipment{
		name:         name,
		equipType:    equipType,
		model:        model,
		serialNumber: serialNumber,
		location:     location,
		clientID:     clientID,
		contractID:   contractID,
	}, nil
}

func ReconstructEquipment(
	id uint,
	name, equipType, model, serialNumber, location string,
	clientID uint,
	contractID *uint,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &Equipment{
		id:           id,
		name:         name,
		equipType:    equipType,
		model:        model,
		serialNumber: serialNumber,
		location:     location,
		clientID:     clientID,
		contractID:   contractID,
	}, nil
}

func (e *Equipment) ID() uint {
	return e.id
}

func (e *Equipment) Name() string {
	return e.name
}

func (e *Equipment) Type() string {
	return e.equipType
}

func (e *Equipment) Model() string {
	return e.model
}

func (e *Equipment) SerialNumber() string {
	return e.serialNumber
}

func (e *Equipment) Location() string {
	return e.location
}

func (e *Equipment) ClientID() uint {
	return e.clientID
}

func (e *Equipment) ContractID() *uint {
	return e.contractID
}

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

// BelongsTo reports whether the equipment is owned by the given client.
func (e *Equipment) BelongsTo(clientID uint) bool {
	return e.clientID == clientID
}
