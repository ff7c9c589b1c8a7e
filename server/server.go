// Copyright 2026 The Agglo Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the clustering engine over a local-only HTTP
// API, for callers that prefer JSON over the point-file format.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pairgroup/agglo/cluster"
)

const defaultAddr = "localhost:8080"

// Coordinate bounds enforced at this boundary; the engine itself does
// not re-check them.
const (
	coordMin = 0
	coordMax = 1000
)

type Server struct {
	addr string
}

func NewServer() *Server {
	return &Server{addr: defaultAddr}
}

// ClusterRequest is the body of POST /api/cluster. Target defaults to
// 1 and Linkage to "average" when omitted.
type ClusterRequest struct {
	Points  []cluster.Point `json:"points" binding:"required"`
	Target  int             `json:"target"`
	Linkage string          `json:"linkage"`
}

// ClusterResponse lists the surviving clusters in index order, each
// cluster's points ordered by ID.
type ClusterResponse struct {
	Clusters [][]cluster.Point `json:"clusters"`
}

func (s *Server) Run() error {
	r := gin.Default()
	s.RegisterRoutes(r)

	fmt.Println("Clustering API starting...")
	fmt.Printf("Open http://%s - local only, not exposed to internet\n", s.addr)

	return r.Run(s.addr)
}

// RegisterRoutes attaches the API handlers to r.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", s.health)
	r.POST("/api/cluster", s.clusterPoints)
}

func (s *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) clusterPoints(ctx *gin.Context) {
	var req ClusterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})

		return
	}

	if len(req.Points) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "at least one point is required"})

		return
	}

	seen := make(map[int]struct{}, len(req.Points))
	for _, p := range req.Points {
		if p.X < coordMin || p.X > coordMax || p.Y < coordMin || p.Y > coordMax {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("point %d: coordinates out of range [%d,%d]: (%g,%g)",
					p.ID, coordMin, coordMax, p.X, p.Y),
			})

			return
		}

		if _, ok := seen[p.ID]; ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("duplicate point id %d", p.ID)})

			return
		}
		seen[p.ID] = struct{}{}
	}

	linkage, err := cluster.ParseLinkage(req.Linkage)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	target := req.Target
	if target == 0 {
		target = 1
	}

	set := cluster.NewSet(len(req.Points))
	for _, p := range req.Points {
		c := cluster.NewCluster(1)
		c.Append(p)
		set.Append(c)
	}

	if err := cluster.Agglomerate(set, target, cluster.Options{Linkage: linkage}); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, cluster.ErrInvalidTarget) || errors.Is(err, cluster.ErrTargetExceedsClusters) {
			status = http.StatusBadRequest
		}

		ctx.JSON(status, gin.H{"error": err.Error()})

		return
	}

	resp := ClusterResponse{Clusters: make([][]cluster.Point, 0, set.Len())}
	for i := 0; i < set.Len(); i++ {
		points := make([]cluster.Point, set.At(i).Len())
		copy(points, set.At(i).Points())
		resp.Clusters = append(resp.Clusters, points)
	}

	ctx.JSON(http.StatusOK, resp)
}
