package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/house"
	resp "go-lodging-api/internal/transport/http/response"
)

// AdminDeps 管理端接口依赖
type AdminDeps struct {
	Accounts domain.AccountRepository
	Houses   *house.Service
}

// mountAdminRoutes 挂到 /admin 前缀下，AuthGate 已保证只有 ADMIN 能进来
func mountAdminRoutes(admin *gin.RouterGroup, d AdminDeps) {
	ez := New(admin)

	// --- GET /admin/accounts 会员检索 ---
	type accountListIn struct {
		Keyword string `form:"keyword"`
		Page    int    `form:"page" binding:"omitempty,min=1"`
		Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	}
	type accountListOut struct {
		Items []accountOut `json:"items"`
		Total int64        `json:"total"`
		Page  int          `json:"page"`
		Size  int          `json:"size"`
	}
	RegisterAction(ez, Action[accountListIn, accountListOut]{
		Method: http.MethodGet,
		Path:   "/accounts",
		Binder: BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *accountListIn) (accountListOut, error) {
			page, size := in.Page, in.Size
			if page == 0 {
				page = 1
			}
			if size == 0 {
				size = 20
			}
			items, total, err := d.Accounts.List(c.Request.Context(), in.Keyword, (page-1)*size, size)
			if err != nil {
				return accountListOut{}, err
			}
			outs := make([]accountOut, 0, len(items))
			for i := range items {
				outs = append(outs, toAccountOut(&items[i]))
			}
			return accountListOut{Items: outs, Total: total, Page: page, Size: size}, nil
		},
	})

	// --- 房源 CRUD ---
	type houseListIn struct {
		Keyword string `form:"keyword"`
		Sort    string `form:"sort" binding:"omitempty,oneof=newest price_asc"`
		Page    int    `form:"page" binding:"omitempty,min=1"`
		Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	}
	type houseListOut struct {
		Items []domain.House `json:"items"`
		Total int64          `json:"total"`
		Page  int            `json:"page"`
		Size  int            `json:"size"`
	}
	RegisterAction(ez, Action[houseListIn, houseListOut]{
		Method: http.MethodGet,
		Path:   "/houses",
		Binder: BindQuery,
		Auth:   true,
		Handler: func(c *gin.Context, in *houseListIn) (houseListOut, error) {
			sort := domain.HouseSort(in.Sort)
			if sort == "" {
				sort = domain.HouseSortNewest
			}
			page, size := in.Page, in.Size
			if page == 0 {
				page = 1
			}
			if size == 0 {
				size = 20
			}
			items, total, err := d.Houses.List(c.Request.Context(), in.Keyword, sort, page, size)
			if err != nil {
				return houseListOut{}, err
			}
			return houseListOut{Items: items, Total: total, Page: page, Size: size}, nil
		},
	})

	ez.g.GET("/houses/:id", func(c *gin.Context) {
		h, err := d.Houses.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(h))
	})

	type houseIn struct {
		Name        string `json:"name" binding:"required,max=128"`
		ImageName   string `json:"imageName" binding:"omitempty,max=255"`
		Description string `json:"description" binding:"required"`
		Price       int    `json:"price" binding:"required,min=1"`
		Capacity    int    `json:"capacity" binding:"required,min=1"`
		PostalCode  string `json:"postalCode" binding:"required,max=16"`
		Address     string `json:"address" binding:"required,max=255"`
		PhoneNumber string `json:"phoneNumber" binding:"required,max=32"`
	}

	RegisterAction(ez, Action[houseIn, domain.House]{
		Method: http.MethodPost,
		Path:   "/houses",
		Binder: BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *houseIn) (domain.House, error) {
			h := domain.House{
				Name: in.Name, ImageName: in.ImageName, Description: in.Description,
				Price: in.Price, Capacity: in.Capacity,
				PostalCode: in.PostalCode, Address: in.Address, PhoneNumber: in.PhoneNumber,
			}
			if err := d.Houses.Create(c.Request.Context(), &h); err != nil {
				return domain.House{}, err
			}
			return h, nil
		},
	})

	ez.g.PUT("/houses/:id", func(c *gin.Context) {
		var in houseIn
		if err := c.ShouldBindJSON(&in); err != nil {
			writeErr(c, BadRequest(err.Error()))
			return
		}
		h := domain.House{
			ID:   c.Param("id"),
			Name: in.Name, ImageName: in.ImageName, Description: in.Description,
			Price: in.Price, Capacity: in.Capacity,
			PostalCode: in.PostalCode, Address: in.Address, PhoneNumber: in.PhoneNumber,
		}
		if err := d.Houses.Update(c.Request.Context(), &h); err != nil {
			writeErr(c, err)
			return
		}
		got, err := d.Houses.Get(c.Request.Context(), h.ID)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(got))
	})

	ez.g.DELETE("/houses/:id", func(c *gin.Context) {
		if err := d.Houses.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(nil))
	})
}
