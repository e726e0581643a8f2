// Package activity publishes catalog usage events. Publishing is fire and
// forget: it never blocks or fails the request that triggered it.
package activity

import "time"

const (
	TopicFoodViewed    = "catalog.food.viewed"
	TopicFoodsSearched = "catalog.foods.searched"
)

// Envelope wraps every event with an id and the time it happened.
type Envelope[T any] struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       T         `json:"data"`
}

// FoodViewed is emitted after a successful detail lookup.
type FoodViewed struct {
	Code        string  `json:"code"`
	ProductName *string `json:"product_name"`
}

// FoodsSearched is emitted after a successful search.
type FoodsSearched struct {
	Term        string `json:"term"`
	ResultCount int    `json:"result_count"`
}
