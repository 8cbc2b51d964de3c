package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"

	"podcast-generation-service/application/flows"
	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/domain"
	"podcast-generation-service/infrastructure/gin_interface/dto"
)

type FlowController interface {
	Generate(c *gin.Context)
	ListFlows(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type flowController struct {
	logger     outbound.LoggerPort
	registry   *flows.Registry
	workerPool outbound.TaskDispatcher
}

func NewFlowController(logger outbound.LoggerPort, registry *flows.Registry, workerPool outbound.TaskDispatcher) FlowController {
	return &flowController{
		logger:     logger,
		registry:   registry,
		workerPool: workerPool,
	}
}

// Generate runs the requested flow on the worker pool and waits for its
// result. The pool bounds how many generations run at once; a saturated pool
// turns into a 503 instead of an unbounded queue.
func (f *flowController) Generate(c *gin.Context) {
	flowType := c.Param("flowType")
	flow, ok := f.registry.Get(flowType)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown flow type: " + flowType})
		return
	}

	var generateRequest dto.GenerateRequest
	if err := c.ShouldBindJSON(&generateRequest); err != nil {
		if abortErr := c.AbortWithError(http.StatusBadRequest, err); abortErr != nil {
			f.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	sources, genCtx := generateRequest.ToDomain()

	resultCh := make(chan domain.PipelineResult, 1)
	err := f.workerPool.Submit(func() {
		resultCh <- flow.Process(c.Request.Context(), sources, genCtx)
	})
	if err != nil {
		if errors.Is(err, ants.ErrPoolOverload) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "generation capacity exhausted, try again later"})
			return
		}
		if abortErr := c.AbortWithError(http.StatusInternalServerError, err); abortErr != nil {
			f.logger.Error(abortErr, "failed to abort with error")
		}
		return
	}

	result := <-resultCh
	if !result.IsSuccess() {
		f.logger.WarnWithFields("Flow returned a failure result", map[string]interface{}{
			"flow_type": flowType,
			"error":     result.ErrorMessage,
		})
	}

	c.JSON(http.StatusOK, dto.NewGenerateResponse(result))
}

func (f *flowController) ListFlows(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewFlowListResponse(f.registry.Describe()))
}

func (f *flowController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (f *flowController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", f.Health)
	g.GET("/flows", f.ListFlows)
	g.POST("/flows/:flowType/generate", f.Generate)
}
