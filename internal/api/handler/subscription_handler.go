package handler

import (
	"utube/internal/api/dto"
	"utube/internal/api/response"
	"utube/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Create POST /subscriptions
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.SubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	sub, err := h.subscriptionService.Create(c.Request.Context(), req.SubscriberUsername, req.SubscribedToUsername)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "subscription", sub)
}

// List GET /subscriptions?subscriberUsername= | ?subscribedToUsername=
func (h *SubscriptionHandler) List(c *gin.Context) {
	filter, err := subscriptionFilter(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	subs, err := h.subscriptionService.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "subscriptions", subs)
}

// Delete DELETE /subscriptions
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	var req dto.SubscriptionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), req.SubscriberUsername, req.SubscribedToUsername); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "deleted", []string{req.SubscriberUsername, req.SubscribedToUsername})
}
