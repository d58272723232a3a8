package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/dto"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/i18n"
	"github.com/guttosm/container-order-service/internal/middleware"
	"github.com/guttosm/container-order-service/internal/service"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// Handler provides HTTP handlers for order session routes.
type Handler struct {
	orders         service.OrderService
	loggingService service.LoggingService
}

// NewHandler creates a new Handler instance. loggingService may be nil.
func NewHandler(orders service.OrderService, loggingService service.LoggingService) *Handler {
	return &Handler{
		orders:         orders,
		loggingService: loggingService,
	}
}

// CapacityClasses handles GET /api/capacity-classes requests.
//
// @Summary      List capacity classes
// @Description  Returns the loaded container capacity table and whether orders can be submitted.
// @Tags         Capacity
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.CapacityClassesResponse}
// @Router       /api/capacity-classes [get]
func (h *Handler) CapacityClasses(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.CapacityClassesResponse{
		Classes:           h.orders.CapacityClasses(),
		SubmissionEnabled: h.orders.SubmissionEnabled(),
	})
}

// CreateOrder handles POST /api/orders requests.
//
// @Summary      Open an order session
// @Description  Creates an order with one empty, active container of the requested class.
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "First container settings"
// @Success      201 {object} dto.SuccessResponse{data=service.OrderView}
// @Failure      400 {object} dto.ErrorResponse "Invalid container settings"
// @Failure      422 {object} dto.ErrorResponse "Unknown capacity class or unsupported route"
// @Failure      502 {object} dto.ErrorResponse "Destination catalog failed"
// @Router       /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	spec := req.Spec()
	view, err := h.orders.Create(c.Request.Context(), spec)
	if err != nil {
		writeServiceError(builder, err)
		return
	}

	middleware.SetSessionID(c, view.ID)
	h.audit(c, model.ActionSessionCreated, "Order session created", map[string]interface{}{
		"size":           spec.Size,
		"refrigerated":   spec.Refrigerated,
		"transport_mode": string(spec.TransportMode),
		"destination_id": spec.DestinationID,
	})
	builder.SuccessCreated(view)
}

// GetOrder handles GET /api/orders/:id requests.
//
// @Summary      Get an order
// @Description  Returns every container with its line items, totals and fill level.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=service.OrderView}
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Router       /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)

	view, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(view)
}

// AbandonOrder handles DELETE /api/orders/:id requests.
//
// @Summary      Abandon an order
// @Description  Drops the session and its order without submitting it.
// @Tags         Orders
// @Param        id path string true "Session ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      409 {object} dto.ErrorResponse "Submission in progress"
// @Router       /api/orders/{id} [delete]
func (h *Handler) AbandonOrder(c *gin.Context) {
	id := sessionParam(c)

	if err := h.orders.Abandon(c.Request.Context(), id); err != nil {
		writeServiceError(NewResponseBuilder(c), err)
		return
	}

	h.audit(c, model.ActionSessionAbandoned, "Order session abandoned", nil)
	NewResponseBuilder(c).NoContent()
}

// OpenContainer handles POST /api/orders/:id/containers requests.
//
// @Summary      Open a container
// @Description  Appends an empty container with the settings of another one and makes it active.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.OpenContainerRequest false "Container to copy settings from"
// @Success      201 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid slot"
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      422 {object} dto.ErrorResponse "Unsupported route"
// @Router       /api/orders/{id}/containers [post]
func (h *Handler) OpenContainer(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)

	req, err := BuildOptionalRequest[dto.OpenContainerRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ctx := c.Request.Context()
	copyFrom := 0
	if req.CopyFrom != nil {
		copyFrom = *req.CopyFrom
	} else {
		view, err := h.orders.Get(ctx, id)
		if err != nil {
			writeServiceError(builder, err)
			return
		}
		copyFrom = view.ActiveIndex
	}

	result, err := h.orders.OpenContainer(ctx, id, copyFrom)
	if !h.writeMutation(builder, result, err) {
		return
	}
	h.audit(c, model.ActionContainerOpened, "Container opened", map[string]interface{}{
		"copy_from": copyFrom,
		"slot":      result.Outcome.Slot,
	})
	builder.SuccessCreated(result)
}

// DeleteContainer handles DELETE /api/orders/:id/containers/:slot requests.
//
// @Summary      Delete a container
// @Description  Removes a container and its line items. The last container cannot be deleted.
// @Tags         Containers
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        slot path int true "Container slot"
// @Success      200 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid slot"
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      409 {object} dto.ErrorResponse "Last container"
// @Router       /api/orders/{id}/containers/{slot} [delete]
func (h *Handler) DeleteContainer(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)
	slot, ok := slotParam(c, builder)
	if !ok {
		return
	}

	result, err := h.orders.DeleteContainer(c.Request.Context(), id, slot)
	if !h.writeMutation(builder, result, err) {
		return
	}
	h.audit(c, model.ActionContainerDeleted, "Container deleted", map[string]interface{}{"slot": slot})
	builder.SuccessOK(result)
}

// RetypeContainer handles PUT /api/orders/:id/containers/:slot/class requests.
//
// @Summary      Change a container's class
// @Description  Switches the size or refrigeration of a container. Rejected when the contents no longer fit or a frozen variant would lose its reefer.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        slot path int true "Container slot"
// @Param        request body dto.RetypeContainerRequest true "New capacity class"
// @Success      200 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      409 {object} dto.ErrorResponse "Contents do not fit or thermal mismatch"
// @Failure      422 {object} dto.ErrorResponse "Unknown capacity class or unsupported route"
// @Router       /api/orders/{id}/containers/{slot}/class [put]
func (h *Handler) RetypeContainer(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)
	slot, ok := slotParam(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.RetypeContainerRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.orders.RetypeContainer(c.Request.Context(), id, slot, req.Size, req.Refrigerated)
	if !h.writeMutation(builder, result, err) {
		return
	}
	h.audit(c, model.ActionContainerRetyped, "Container class changed", map[string]interface{}{
		"slot":         slot,
		"size":         req.Size,
		"refrigerated": req.Refrigerated,
	})
	builder.SuccessOK(result)
}

// SwitchActive handles PUT /api/orders/:id/active requests.
//
// @Summary      Switch the active container
// @Description  Selects the container that receives new items.
// @Tags         Containers
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.SwitchActiveRequest true "Slot to activate"
// @Success      200 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid slot"
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Router       /api/orders/{id}/active [put]
func (h *Handler) SwitchActive(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)

	req, err := BuildRequest[dto.SwitchActiveRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.orders.SwitchActive(c.Request.Context(), id, *req.Slot)
	if !h.writeMutation(builder, result, err) {
		return
	}
	builder.SuccessOK(result)
}

// AddItem handles POST /api/orders/:id/containers/:slot/items requests.
//
// @Summary      Add boxes of a variant
// @Description  Looks the variant up in the catalog and adds boxes to the container, merging with an existing line. A capacity rejection reports the limiting axis and how many boxes still fit.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Session ID"
// @Param        slot path int true "Container slot"
// @Param        request body dto.AddItemRequest true "Variant and quantity"
// @Success      200 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid quantity or slot"
// @Failure      404 {object} dto.ErrorResponse "Unknown session or variant"
// @Failure      409 {object} dto.ErrorResponse "Capacity exceeded or thermal mismatch"
// @Failure      502 {object} dto.ErrorResponse "Catalog failed"
// @Failure      503 {object} dto.ErrorResponse "Catalog unavailable"
// @Router       /api/orders/{id}/containers/{slot}/items [post]
func (h *Handler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)
	slot, ok := slotParam(c, builder)
	if !ok {
		return
	}

	req, err := BuildRequest[dto.AddItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.orders.AddItem(c.Request.Context(), id, slot, req.VariantID, req.Quantity, req.Note)
	if !h.writeMutation(builder, result, err) {
		return
	}
	h.audit(c, model.ActionItemAdded, "Item added", map[string]interface{}{
		"slot":       slot,
		"variant_id": req.VariantID,
		"quantity":   req.Quantity,
	})
	builder.SuccessOK(result)
}

// AdjustItem handles PUT /api/orders/:id/containers/:slot/items/:variantId requests.
//
// @Summary      Set a line's quantity
// @Description  Replaces the number of boxes of a variant in the container.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        slot path int true "Container slot"
// @Param        variantId path string true "Variant ID"
// @Param        request body dto.AdjustItemRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid quantity or unknown line"
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      409 {object} dto.ErrorResponse "Capacity exceeded"
// @Router       /api/orders/{id}/containers/{slot}/items/{variantId} [put]
func (h *Handler) AdjustItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)
	slot, ok := slotParam(c, builder)
	if !ok {
		return
	}
	variantID := c.Param("variantId")

	req, err := BuildRequest[dto.AdjustItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.orders.AdjustItem(c.Request.Context(), id, slot, variantID, req.Quantity)
	if !h.writeMutation(builder, result, err) {
		return
	}
	h.audit(c, model.ActionItemAdjusted, "Item quantity changed", map[string]interface{}{
		"slot":       slot,
		"variant_id": variantID,
		"quantity":   req.Quantity,
	})
	builder.SuccessOK(result)
}

// RemoveItem handles DELETE /api/orders/:id/containers/:slot/items/:variantId requests.
//
// @Summary      Remove a line
// @Description  Deletes a variant's line from the container.
// @Tags         Items
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        slot path int true "Container slot"
// @Param        variantId path string true "Variant ID"
// @Success      200 {object} dto.SuccessResponse{data=service.MutationResult}
// @Failure      400 {object} dto.ErrorResponse "Invalid slot"
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Router       /api/orders/{id}/containers/{slot}/items/{variantId} [delete]
func (h *Handler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)
	slot, ok := slotParam(c, builder)
	if !ok {
		return
	}
	variantID := c.Param("variantId")

	result, err := h.orders.RemoveItem(c.Request.Context(), id, slot, variantID)
	if !h.writeMutation(builder, result, err) {
		return
	}
	h.audit(c, model.ActionItemRemoved, "Item removed", map[string]interface{}{
		"slot":       slot,
		"variant_id": variantID,
	})
	builder.SuccessOK(result)
}

// Payload handles GET /api/orders/:id/payload requests.
//
// @Summary      Preview the submission payload
// @Description  Returns the order as it would be submitted. Empty containers are left out.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=model.SubmissionPayload}
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      422 {object} dto.ErrorResponse "Order has no line items"
// @Router       /api/orders/{id}/payload [get]
func (h *Handler) Payload(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)

	payload, err := h.orders.Payload(c.Request.Context(), id)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	builder.SuccessOK(payload)
}

// Submit handles POST /api/orders/:id/submit requests.
//
// @Summary      Submit an order
// @Description  Hands the order to the order store and resets the session to one empty container on success. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Session ID"
// @Success      201 {object} dto.SuccessResponse{data=model.SubmissionReceipt}
// @Failure      404 {object} dto.ErrorResponse "Unknown session"
// @Failure      409 {object} dto.ErrorResponse "Submission in progress"
// @Failure      422 {object} dto.ErrorResponse "Order has no line items"
// @Failure      502 {object} dto.ErrorResponse "Order store failed"
// @Failure      503 {object} dto.ErrorResponse "Submission not available"
// @Router       /api/orders/{id}/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)

	receipt, err := h.orders.Submit(c.Request.Context(), id)
	if err != nil {
		if h.loggingService != nil {
			middleware.AuditLogError(h.loggingService, c, model.ActionOrderSubmitted, "Order submission failed", err, nil)
		}
		writeServiceError(builder, err)
		return
	}

	h.audit(c, model.ActionOrderSubmitted, "Order submitted", map[string]interface{}{
		"order_id":    receipt.OrderID,
		"containers":  receipt.Containers,
		"box_count":   receipt.BoxCount,
		"total_price": receipt.TotalPrice.String(),
	})
	builder.SuccessCreated(receipt)
}

// AuditTrail handles GET /api/orders/:id/audit requests.
//
// @Summary      Session audit trail
// @Description  Returns the recorded actions of a session, newest first.
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        limit query int false "Maximum number of entries (default 50, max 500)"
// @Success      200 {object} dto.SuccessResponse{data=[]model.LogEntry}
// @Failure      400 {object} dto.ErrorResponse "Invalid limit"
// @Failure      502 {object} dto.ErrorResponse "Log store failed"
// @Router       /api/orders/{id}/audit [get]
func (h *Handler) AuditTrail(c *gin.Context) {
	builder := NewResponseBuilder(c)
	id := sessionParam(c)

	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = min(n, maxAuditLimit)
	}

	entries, err := h.loggingService.AuditTrail(c.Request.Context(), id, limit)
	if err != nil {
		writeServiceError(builder, err)
		return
	}
	if entries == nil {
		entries = []model.LogEntry{}
	}
	builder.SuccessOK(entries)
}

// writeMutation writes the error or rejection of a mutation. It returns true when
// the mutation was accepted and the caller should write the success response.
func (h *Handler) writeMutation(builder *ResponseBuilder, result service.MutationResult, err error) bool {
	if err != nil {
		writeServiceError(builder, err)
		return false
	}
	if !result.Outcome.Accepted {
		writeRejection(builder, result.Outcome)
		return false
	}
	return true
}

func (h *Handler) audit(c *gin.Context, action, message string, fields map[string]interface{}) {
	if h.loggingService == nil {
		return
	}
	middleware.AuditLog(h.loggingService, c, action, message, fields)
}

// sessionParam returns the :id route parameter and tags the request with it.
func sessionParam(c *gin.Context) string {
	id := c.Param("id")
	middleware.SetSessionID(c, id)
	return id
}

// slotParam parses the :slot route parameter. Range checks are left to the engine.
func slotParam(c *gin.Context, builder *ResponseBuilder) (int, bool) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return 0, false
	}
	return slot, true
}
