package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/house"
	resp "go-lodging-api/internal/transport/http/response"
)

// mountHouseRoutes 公开的房源浏览接口，无需登录
func mountHouseRoutes(public *gin.RouterGroup, svc *house.Service) {
	ez := New(public)

	type listIn struct {
		Keyword string `form:"keyword"`
		Sort    string `form:"sort" binding:"omitempty,oneof=newest price_asc"`
		Page    int    `form:"page" binding:"omitempty,min=1"`
		Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
	}
	type listOut struct {
		Items []domain.House `json:"items"`
		Total int64          `json:"total"`
		Page  int            `json:"page"`
		Size  int            `json:"size"`
	}
	RegisterAction(ez, Action[listIn, listOut]{
		Method: http.MethodGet,
		Path:   "/houses",
		Binder: BindQuery,
		Handler: func(c *gin.Context, in *listIn) (listOut, error) {
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
			items, total, err := svc.List(c.Request.Context(), in.Keyword, sort, page, size)
			if err != nil {
				return listOut{}, err
			}
			return listOut{Items: items, Total: total, Page: page, Size: size}, nil
		},
	})

	type detailIn struct {
		ID string `uri:"id" binding:"required"`
	}
	ez.g.GET("/houses/:id", func(c *gin.Context) {
		var in detailIn
		if err := c.ShouldBindUri(&in); err != nil {
			writeErr(c, BadRequest(err.Error()))
			return
		}
		h, err := svc.Get(c.Request.Context(), in.ID)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, resp.OK(h))
	})
}
