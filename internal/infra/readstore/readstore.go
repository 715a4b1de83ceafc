package readstore

import (
	"parkhub/internal/infra"
	"parkhub/internal/pkg/pgconv"
)

func wrapReadErr(msg string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(msg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}
