package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
	bindstorapi "github.com/bindstor/bindstor/pkg/apiserver/api"
	"github.com/bindstor/bindstor/pkg/storage"
)

type IClaimController interface {
	ClaimGet(ctx *gin.Context)
	ClaimList(ctx *gin.Context)
	ClaimSubmit(ctx *gin.Context)
	ClaimRelease(ctx *gin.Context)
	BindingList(ctx *gin.Context)
	EventList(ctx *gin.Context)
}

type ClaimController struct {
	m apis.StorageMember
}

func NewClaimController(m apis.StorageMember) IClaimController {
	return &ClaimController{m}
}

// ClaimGet godoc
// @Summary     get a registered claim
// @Tags        Claim
// @Param       claimName path string true "claimName"
// @Accept      json
// @Produce     json
// @Success     200 {object} api.Claim
// @Router      /cluster/claims/{claimName} [get]
func (n *ClaimController) ClaimGet(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	claimName := ctx.Param("claimName")
	if claimName == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "claimName cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	claim, err := n.m.GetClaim(claimName)
	if err != nil {
		failRsp.ErrCode = http.StatusNotFound
		failRsp.Desc = err.Error()
		ctx.JSON(http.StatusNotFound, failRsp)
		return
	}

	ctx.JSON(http.StatusOK, bindstorapi.ToClaimResource(claim))
}

// ClaimList godoc
// @Summary     list registered claims
// @Tags        Claim
// @Accept      json
// @Produce     json
// @Success     200 {object} api.ClaimList
// @Router      /cluster/claims [get]
func (n *ClaimController) ClaimList(ctx *gin.Context) {
	claims := n.m.ListClaims()
	rsp := bindstorapi.ClaimList{Claims: make([]*bindstorapi.Claim, 0, len(claims))}
	for _, claim := range claims {
		rsp.Claims = append(rsp.Claims, bindstorapi.ToClaimResource(claim))
	}
	ctx.JSON(http.StatusOK, rsp)
}

// ClaimSubmit godoc
// @Summary     submit a claim and attempt an immediate bind
// @Description a Pending answer means no compatible volume is free yet
// @Tags        Claim
// @Param       body body api.SubmitClaimReqBody true "reqBody"
// @Accept      json
// @Produce     json
// @Success     200 {object} api.SubmitClaimRspBody
// @Router      /cluster/claims [post]
func (n *ClaimController) ClaimSubmit(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	var req bindstorapi.SubmitClaimReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		failRsp.ErrCode = http.StatusBadRequest
		failRsp.Desc = "invalid request body: " + err.Error()
		ctx.JSON(http.StatusBadRequest, failRsp)
		return
	}
	if req.Name == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "claim name cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	err := n.m.SubmitClaim(req.Name, &req.Descriptor)
	if err != nil && !errors.Is(err, storage.ErrorWaitingForCapacity) {
		code := http.StatusBadRequest
		if errors.Is(err, storage.ErrorClaimExists) {
			code = http.StatusConflict
		}
		failRsp.ErrCode = code
		failRsp.Desc = err.Error()
		ctx.JSON(code, failRsp)
		return
	}
	log.WithField("claim", req.Name).Debug("Submitted a claim via apiserver")

	claim, err := n.m.GetClaim(req.Name)
	if err != nil {
		failRsp.ErrCode = http.StatusInternalServerError
		failRsp.Desc = err.Error()
		ctx.JSON(http.StatusInternalServerError, failRsp)
		return
	}
	ctx.JSON(http.StatusOK, bindstorapi.SubmitClaimRspBody{Name: claim.Name, State: claim.Status.State})
}

// ClaimRelease godoc
// @Summary     release a claim and free its volume
// @Tags        Claim
// @Param       claimName path string true "claimName"
// @Accept      json
// @Produce     json
// @Success     200
// @Router      /cluster/claims/{claimName} [delete]
func (n *ClaimController) ClaimRelease(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	claimName := ctx.Param("claimName")
	if claimName == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "claimName cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	if err := n.m.ReleaseClaim(claimName); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrorClaimNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, storage.ErrorClaimMounted) {
			code = http.StatusConflict
		}
		failRsp.ErrCode = code
		failRsp.Desc = err.Error()
		ctx.JSON(code, failRsp)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"released": claimName})
}

// BindingList godoc
// @Summary     list live claim-volume bindings
// @Tags        Claim
// @Accept      json
// @Produce     json
// @Success     200 {object} api.BindingList
// @Router      /cluster/bindings [get]
func (n *ClaimController) BindingList(ctx *gin.Context) {
	bindings := n.m.ListBindings()
	rsp := bindstorapi.BindingList{Bindings: make([]*bindstorapi.Binding, 0, len(bindings))}
	for i := range bindings {
		rsp.Bindings = append(rsp.Bindings, &bindstorapi.Binding{
			ClaimName:  bindings[i].ClaimName,
			VolumeName: bindings[i].VolumeName,
			CreateTime: bindings[i].CreateTime,
		})
	}
	ctx.JSON(http.StatusOK, rsp)
}

// EventList godoc
// @Summary     list recent claim state transitions
// @Tags        Claim
// @Accept      json
// @Produce     json
// @Success     200
// @Router      /cluster/events [get]
func (n *ClaimController) EventList(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, bindstorapi.EventList{Events: n.m.Events()})
}
