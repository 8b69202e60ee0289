package postgres

import (
	"fulfillment/internal/adapters/out/postgres/carrierrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/lineitemrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Notification channels raised by the triggers installed in Migrate. The payload
// is the id of the affected order.
const (
	OrderChangedChannel     = "order_changed"
	LineItemsChangedChannel = "line_items_changed"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&carrierrepo.CarrierOfferDTO{},
		&deliveryrepo.DeliveryDTO{},
		&lineitemrepo.LineItemDTO{},
	}
}

var notifyTriggers = []string{
	`CREATE OR REPLACE FUNCTION notify_order_changed() RETURNS trigger AS $$
	BEGIN
		PERFORM pg_notify('` + OrderChangedChannel + `', NEW.id::text);
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS orders_notify_changed ON orders`,
	`CREATE TRIGGER orders_notify_changed
		AFTER INSERT OR UPDATE ON orders
		FOR EACH ROW EXECUTE FUNCTION notify_order_changed()`,

	`CREATE OR REPLACE FUNCTION notify_line_items_changed() RETURNS trigger AS $$
	BEGIN
		IF TG_OP = 'DELETE' THEN
			PERFORM pg_notify('` + LineItemsChangedChannel + `', OLD.order_id::text);
			RETURN OLD;
		END IF;
		PERFORM pg_notify('` + LineItemsChangedChannel + `', NEW.order_id::text);
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS line_items_notify_changed ON line_items`,
	`CREATE TRIGGER line_items_notify_changed
		AFTER INSERT OR UPDATE OR DELETE ON line_items
		FOR EACH ROW EXECUTE FUNCTION notify_line_items_changed()`,
}

// Migrate creates or updates the schema and (re)installs the notification triggers.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range notifyTriggers {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
