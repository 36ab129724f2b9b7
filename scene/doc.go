// Package scene is the minimal 3D layer behind the LED cube: box meshes with
// per-mesh materials, a perspective camera with orbit controls, and a
// raycaster for pointer picking.
//
// Coordinates are right-handed with +Y up. The camera looks down its local -Z.
package scene
