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

type IVolumeController interface {
	VolumeGet(ctx *gin.Context)
	VolumeList(ctx *gin.Context)
	VolumeRegister(ctx *gin.Context)
	VolumeRelease(ctx *gin.Context)
	VolumeDestroy(ctx *gin.Context)
}

type VolumeController struct {
	m apis.StorageMember
}

func NewVolumeController(m apis.StorageMember) IVolumeController {
	return &VolumeController{m}
}

// VolumeGet godoc
// @Summary     get a pool volume
// @Tags        Volume
// @Param       volumeName path string true "volumeName"
// @Accept      json
// @Produce     json
// @Success     200 {object} api.Volume
// @Router      /cluster/volumes/{volumeName} [get]
func (n *VolumeController) VolumeGet(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	volumeName := ctx.Param("volumeName")
	if volumeName == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "volumeName cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	vol, err := n.m.GetVolume(volumeName)
	if err != nil {
		failRsp.ErrCode = http.StatusNotFound
		failRsp.Desc = err.Error()
		ctx.JSON(http.StatusNotFound, failRsp)
		return
	}

	ctx.JSON(http.StatusOK, bindstorapi.ToVolumeResource(vol))
}

// VolumeList godoc
// @Summary     list pool volumes
// @Tags        Volume
// @Accept      json
// @Produce     json
// @Success     200 {object} api.VolumeList
// @Router      /cluster/volumes [get]
func (n *VolumeController) VolumeList(ctx *gin.Context) {
	vols := n.m.ListVolumes()
	rsp := bindstorapi.VolumeList{Volumes: make([]*bindstorapi.Volume, 0, len(vols))}
	for _, vol := range vols {
		rsp.Volumes = append(rsp.Volumes, bindstorapi.ToVolumeResource(vol))
	}
	ctx.JSON(http.StatusOK, rsp)
}

// VolumeRegister godoc
// @Summary     register a volume into the pool
// @Tags        Volume
// @Param       body body api.RegisterVolumeReqBody true "reqBody"
// @Accept      json
// @Produce     json
// @Success     200 {object} api.Volume
// @Router      /cluster/volumes [post]
func (n *VolumeController) VolumeRegister(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	var req bindstorapi.RegisterVolumeReqBody
	if err := ctx.ShouldBindJSON(&req); err != nil {
		failRsp.ErrCode = http.StatusBadRequest
		failRsp.Desc = "invalid request body: " + err.Error()
		ctx.JSON(http.StatusBadRequest, failRsp)
		return
	}
	if req.Name == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "volume name cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	if err := n.m.RegisterVolume(req.Name, &req.Descriptor); err != nil {
		if errors.Is(err, storage.ErrorVolumeExists) {
			failRsp.ErrCode = http.StatusConflict
			failRsp.Desc = err.Error()
			ctx.JSON(http.StatusConflict, failRsp)
			return
		}
		failRsp.ErrCode = http.StatusBadRequest
		failRsp.Desc = err.Error()
		ctx.JSON(http.StatusBadRequest, failRsp)
		return
	}
	log.WithField("volume", req.Name).Debug("Registered a volume via apiserver")

	vol, err := n.m.GetVolume(req.Name)
	if err != nil {
		failRsp.ErrCode = http.StatusInternalServerError
		failRsp.Desc = err.Error()
		ctx.JSON(http.StatusInternalServerError, failRsp)
		return
	}
	ctx.JSON(http.StatusOK, bindstorapi.ToVolumeResource(vol))
}

// VolumeRelease godoc
// @Summary     remove an unbound volume from the pool
// @Tags        Volume
// @Param       volumeName path string true "volumeName"
// @Accept      json
// @Produce     json
// @Success     200
// @Router      /cluster/volumes/{volumeName} [delete]
func (n *VolumeController) VolumeRelease(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	volumeName := ctx.Param("volumeName")
	if volumeName == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "volumeName cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	if err := n.m.ReleaseVolume(volumeName); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrorVolumeNotFound) {
			code = http.StatusNotFound
		} else if errors.Is(err, storage.ErrorVolumeBound) {
			code = http.StatusConflict
		}
		failRsp.ErrCode = code
		failRsp.Desc = err.Error()
		ctx.JSON(code, failRsp)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"removed": volumeName})
}

// VolumeDestroy godoc
// @Summary     destroy a volume even while bound, losing its claim
// @Tags        Volume
// @Param       volumeName path string true "volumeName"
// @Accept      json
// @Produce     json
// @Success     200
// @Router      /cluster/volumes/{volumeName}/destroy [post]
func (n *VolumeController) VolumeDestroy(ctx *gin.Context) {
	var failRsp bindstorapi.RspFailBody

	volumeName := ctx.Param("volumeName")
	if volumeName == "" {
		failRsp.ErrCode = http.StatusNonAuthoritativeInfo
		failRsp.Desc = "volumeName cannot be empty"
		ctx.JSON(http.StatusNonAuthoritativeInfo, failRsp)
		return
	}

	if err := n.m.DestroyVolume(volumeName); err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, storage.ErrorVolumeNotFound) {
			code = http.StatusNotFound
		}
		failRsp.ErrCode = code
		failRsp.Desc = err.Error()
		ctx.JSON(code, failRsp)
		return
	}
	log.WithField("volume", volumeName).Info("Destroyed a volume via apiserver")

	ctx.JSON(http.StatusOK, gin.H{"destroyed": volumeName})
}
