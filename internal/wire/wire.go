//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/thehamzasani/primeTube/internal/comment"
	"github.com/thehamzasani/primeTube/internal/dashboard"
	"github.com/thehamzasani/primeTube/internal/dbmongo"
	"github.com/thehamzasani/primeTube/internal/media"
	"github.com/thehamzasani/primeTube/internal/video"
)

var storeSet = wire.NewSet(
	ProvideConfig,
	ProvideMongoClient,
	ProvideDatabase,
	ProvideMediaStorage,
	ProvideTokenManager,
)

var videoSet = wire.NewSet(
	video.NewVideoRepository,
	wire.Bind(new(video.MediaStore), new(*dbmongo.MediaStorage)),
	video.NewVideoService,
	ProvideVideoHandler,
)

var commentSet = wire.NewSet(
	comment.NewCommentRepository,
	comment.NewCommentService,
	comment.NewHandler,
)

var dashboardSet = wire.NewSet(
	dashboard.NewDashboardRepository,
	dashboard.NewDashboardService,
	dashboard.NewHandler,
)

var mediaSet = wire.NewSet(
	wire.Bind(new(media.FileSource), new(*dbmongo.MediaStorage)),
	media.NewHTTPServer,
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		storeSet,
		videoSet,
		commentSet,
		dashboardSet,
		mediaSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
