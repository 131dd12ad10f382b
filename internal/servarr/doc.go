// Package servarr defines the JSON documents exchanged with Radarr, Sonarr
// and Lidarr. Only the fields the dashboard displays or posts back are
// modelled; unknown fields are ignored on decode.
package servarr
