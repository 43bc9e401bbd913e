package client

import (
	"fmt"
	"time"
)

// Client is an organization receiving service. Clients are created
// administratively and never deleted in-app.
type Client struct {
	id            uint
	name          string
	document      string
	contactPerson string
	phone         string
	email         string
	address       string
	createdAt     time.Time
}

func NewClient(name, document, contactPerson, phone, email, address string) (*Client, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	return &Client{
		name:          name,
		document:      document,
		contactPerson: contactPerson,
		phone:         phone,
		email:         email,
		address:       address,
		createdAt:     time.Now().UTC(),
	}, nil
}

func ReconstructClient(
	id uint,
	name, document, contactPerson, phone, email, address string,
	createdAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Client{
		id:            id,
		name:          name,
		document:      document,
		contactPerson: contactPerson,
		phone:         phone,
		email:         email,
		address:       address,
		createdAt:     createdAt,
	}, nil
}

func (c *Client) ID() uint {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) Document() string {
	return c.document
}

func (c *Client) ContactPerson() string {
	return c.contactPerson
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Email() string {
	return c.email
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateDetails replaces every editable field at once.
func (c *Client) UpdateDetails(name, document, contactPerson, phone, email, address string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}

	c.name = name
	c.document = document
	c.contactPerson = contactPerson
	c.phone = phone
	c.email = email
	c.address = address
	return nil
}

func (c *Client) UpdateContact(contactPerson, phone, email, address string) {
	c.contactPerson = contactPerson
	c.phone = phone
	c.email = email
	c.address = address
}
