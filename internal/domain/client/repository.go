package client

import "context"

type Repository interface {
	Save(ctx context.Context, client *Client) error
	Update(ctx context.Context, client *Client) error
	GetByID(ctx context.Context, id uint) (*Client, error)
	List(ctx context.Context) ([]*Client, error)
	Exists(ctx context.Context, id uint) (bool, error)
}
