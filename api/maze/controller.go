package mazeapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-mazegen/infrastruture/encoder"
	logger "github.com/beka-birhanu/vinom-mazegen/infrastruture/log"
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/render/picture"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
)

var ErrInvalidMaxDimension = errors.New("max dimension must be positive")

// MazeController generates one maze per request.
type MazeController struct {
	maxDimension int
	recorder     i.StepRecorder
	logger       *logger.Logger
}

// NewMazeController initializes a MazeController. recorder and log may be nil.
func NewMazeController(maxDimension int, recorder i.StepRecorder, log *logger.Logger) (*MazeController, error) {
	if maxDimension < 1 {
		return nil, ErrInvalidMaxDimension
	}
	if log == nil {
		log = logger.Nop()
	}
	return &MazeController{
		maxDimension: maxDimension,
		recorder:     recorder,
		logger:       log,
	}, nil
}

// RegisterPublic registers public routes.
func (c *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", c.generate)
		mazes.GET("/image", c.image)
	}
}

// RegisterProtected registers privileged routes.
func (c *MazeController) RegisterProtected(route *gin.RouterGroup) {
}

// generate responds with the snapshot of a freshly generated maze in the
// requested format.
func (c *MazeController) generate(ctx *gin.Context) {
	request, ok := c.bind(ctx)
	if !ok {
		return
	}

	enc, err := encoder.ForFormat(request.Format)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, ok := c.run(ctx, request)
	if !ok {
		return
	}

	body, err := enc.Marshal(result.Snapshot())
	if err != nil {
		c.logger.Error(fmt.Sprintf("encoding maze %s: %v", result.ID, err))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not encode maze"})
		return
	}
	ctx.Data(http.StatusOK, enc.ContentType(), body)
}

// image responds with a PNG of a freshly generated maze.
func (c *MazeController) image(ctx *gin.Context) {
	request, ok := c.bind(ctx)
	if !ok {
		return
	}

	result, ok := c.run(ctx, request)
	if !ok {
		return
	}

	img, err := picture.Image(result.Generator.Grid(), result.Generator.Current(), picture.Options{CellPixels: request.CellSize})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := picture.EncodePNG(&buf, img); err != nil {
		c.logger.Error(fmt.Sprintf("rendering maze %s: %v", result.ID, err))
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not render maze"})
		return
	}
	ctx.Header("X-Maze-Id", result.ID.String())
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (c *MazeController) bind(ctx *gin.Context) (*GenerateRequest, bool) {
	var request GenerateRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	if request.Rows > c.maxDimension || request.Columns > c.maxDimension {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("rows and columns must not exceed %d", c.maxDimension),
		})
		return nil, false
	}
	return &request, true
}

func (c *MazeController) run(ctx *gin.Context, request *GenerateRequest) (*service.Result, bool) {
	result, err := service.Generate(ctx.Request.Context(), service.Request{
		Rows:     request.Rows,
		Columns:  request.Columns,
		Seed:     request.Seed,
		Recorder: c.recorder,
		Logger:   c.logger,
	})
	switch {
	case errors.Is(err, maze.ErrInvalidConfiguration):
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	case err != nil:
		c.logger.Warning(fmt.Sprintf("generation aborted: %v", err))
		ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "generation aborted"})
		return nil, false
	}
	return result, true
}
