//go:generate mockgen -source=../order_repository.go       -destination=./mock_order_repository.go       -package=mocks
//go:generate mockgen -source=../order_number_store.go     -destination=./mock_order_number_store.go     -package=mocks
//go:generate mockgen -source=../order_number_generator.go -destination=./mock_order_number_generator.go -package=mocks
//go:generate mockgen -source=../outlet_cache.go           -destination=./mock_outlet_cache.go           -package=mocks
//go:generate mockgen -source=../validator.go              -destination=./mock_validator.go              -package=mocks
//go:generate mockgen -source=../order_service.go          -destination=./mock_order_service.go          -package=mocks

package mocks
