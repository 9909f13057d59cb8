package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	apis "github.com/bindstor/bindstor/pkg/apis/bindstor"
	apisv1alpha1 "github.com/bindstor/bindstor/pkg/apis/bindstor/v1alpha1"
	bindstorapi "github.com/bindstor/bindstor/pkg/apiserver/api"
	"github.com/bindstor/bindstor/pkg/storage"
)

type IMountController interface {
	MountList(ctx *gin.Context)
	MountRelease(ctx *gin.Context)
	WorkloadMountsRequest(ctx *gin.Context)
}

type MountController struct {
	m apis.StorageMember
}

func NewMountController(m apis.StorageMember) IMountController {
	return &MountController{m}
}

// MountList godoc
// @Summary     list live mount handles
// @Tags        Mount
// @Accept      json
// @Produce     json
// @Success     200 {object} api.MountList
// @Router      /cluster/mounts [get]
func (n *MountController) MountList(ctx *gin.Context) {
	mounts := n.m.ListMounts()
	rsp := bindstorapi.MountList{Mounts: make([]*bindstorapi.Mount, 0, len(mounts))}
	for _, m := range mounts {
		rsp.Mounts = append(rsp.Mounts, bindstorapi.ToMountResource(m))
	}
	ctx.JSON(http.StatusOK, rsp)
}

// MountRelease godoc
// @Summary     release a mount handle, a no-op for an unknown id
// @Tags        Mount
// @Param       mountID path string true "mountID"
// @Accept      json
// @Produce     json
// @Success     200
// @Router      /cluster/mounts/{mountID} [delete]
func (n *MountController) MountRelease(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	mountID := ctx.Param("mountID")
	if mountID == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "mountID cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	if err := n.m.ReleaseMount(mountID); err != nil {
		failRsp.ErrCode = http.StatusInternalServerError
		failRsp.Desc = err.Error()
		ctx.JSON(http.StatusInternalServerError, failRsp)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"released": mountID})
}

// WorkloadMountsRequest godoc
// @Summary     request all mounts of a workload, all-or-none
// @Tags        Mount
// @Param       workloadName path string true "workloadName"
// @Param       body body v1alpha1.WorkloadDescriptor true "reqBody"
// @Accept      json
// @Produce     json
// @Success     200 {object} api.MountList
// @Router      /cluster/workloads/{workloadName}/mounts [post]
func (n *MountController) WorkloadMountsRequest(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	workloadName := ctx.Param("workloadName")
	if workloadName == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "workloadName cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	var desc apisv1alpha1.WorkloadDescriptor
	if err := ctx.ShouldBindJSON(&desc); err != nil {
		failRsp.ErrCode = http.StatusBadRequest
		failRsp.Desc = "invalid request body: " + err.Error()
		ctx.JSON(http.StatusBadRequest, failRsp)
		return
	}

	mounts, err := n.m.RequestWorkloadMounts(workloadName, &desc)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrorClaimNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, storage.ErrorClaimNotBound) || errors.Is(err, storage.ErrorClaimLost) {
			code = http.StatusConflict
		}
		failRsp.ErrCode = code
		failRsp.Desc = err.Error()
		ctx.JSON(code, failRsp)
		return
	}
	log.WithField("workload", workloadName).Debug("Issued workload mounts via apiserver")

	rsp := bindstorapi.MountList{Mounts: make([]*bindstorapi.Mount, 0, len(mounts))}
	for _, m := range mounts {
		rsp.Mounts = append(rsp.Mounts, bindstorapi.ToMountResource(m))
	}
	ctx.JSON(http.StatusOK, rsp)
}
