package entities

import "time"

type Order struct {
	ID           string
	DeliverTo    string
	MobileNumber string
	// Status строковый статус; для нестроковых значений пустой.
	Status OrderStatusType
	// RawStatus статус ровно в том виде, в каком его прислал клиент; nil если не передан.
	RawStatus any
	Dishes    []OrderDish
}

// OrderDish позиция заказа. Attributes хранит объект из запроса без изменений
// (dishId, name, price и любые другие поля), Quantity разобранное количество, всегда > 0.
type OrderDish struct {
	Attributes Payload
	Quantity   int64
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderPreparing      OrderStatusType = "preparing"
	OrderOutForDelivery OrderStatusType = "out-for-delivery"
	OrderDelivered      OrderStatusType = "delivered"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Clone глубоко копирует заказ: блюда, их атрибуты и RawStatus.
func (o Order) Clone() Order {
	if o.Dishes != nil {
		dishes := make([]OrderDish, len(o.Dishes))
		for i, d := range o.Dishes {
			dishes[i] = OrderDish{
				Attributes: d.Attributes.Clone(),
				Quantity:   d.Quantity,
			}
		}
		o.Dishes = dishes
	}
	o.RawStatus = CloneValue(o.RawStatus)
	return o
}

type OrderEventType string

const (
	OrderCreatedEvent OrderEventType = "order.created"
	OrderUpdatedEvent OrderEventType = "order.updated"
	OrderDeletedEvent OrderEventType = "order.deleted"
)

func (t OrderEventType) String() string {
	return string(t)
}

type OrderEvent struct {
	Type       OrderEventType
	OrderID    string
	Status     OrderStatusType
	OccurredAt time.Time
}
