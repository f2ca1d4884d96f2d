package cmd

import (
	"ecommerce/internal/adapters/out/crypto"
	"ecommerce/internal/adapters/out/postgres"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypto.NewArgon2Hasher(crypto.DefaultParams),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAppendOrderItemsCommandHandler() commands.AppendOrderItemsCommandHandler {
	return commands.NewAppendOrderItemsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderItemCommandHandler() commands.UpdateOrderItemCommandHandler {
	return commands.NewUpdateOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateSignInUserCommandHandler() commands.SignInUserCommandHandler {
	var f commands.AuthUoWFactory = FuncAuthUoWFactory(func() commands.AuthUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSignInUserCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserProfileCommandHandler() commands.UpdateUserProfileCommandHandler {
	return commands.NewUpdateUserProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreatePurgeExpiredSessionsCommandHandler() commands.PurgeExpiredSessionsCommandHandler {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeExpiredSessionsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncAuthUoWFactory func() commands.AuthUoW

func (f FuncAuthUoWFactory) Create() commands.AuthUoW {
	return f()
}
