// Package overlay composes display frames from pipeline results: trace
// templates, thresholded reference images, contour polylines, and the
// wireframe model preview. It only draws; encoding and transport belong
// to the bitmap package and the session layer.
package overlay
