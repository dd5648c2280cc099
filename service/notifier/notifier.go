package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/viney-shih/goroutines"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/base/log"
	"github.com/nextswap/auction-api/domain"
)

// Service pushes auction lifecycle announcements to a discord channel.
// Delivery is fire-and-forget, a failed notification never fails the
// operation that triggered it.
type Service interface {
	NotifyAuctionStarted(c ctx.Ctx, auctionId int64, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, reservePrice string)
	NotifyBidPlaced(c ctx.Ctx, auctionId int64, bidder domain.Address, amount string)
	NotifyAuctionSettled(c ctx.Ctx, auctionId int64, winner domain.Address, amount string)
	Close()
}

type Config struct {
	BotKey    string
	ChannelId string
}

type impl struct {
	channelId  string
	discord    *discordgo.Session
	workerPool *goroutines.Pool
}

func New(cfg *Config) (Service, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, err
	}
	return &impl{
		channelId:  cfg.ChannelId,
		discord:    discord,
		workerPool: goroutines.NewPool(4),
	}, nil
}

func (im *impl) send(c ctx.Ctx, msg *discordgo.MessageEmbed) {
	im.workerPool.Schedule(func() {
		if _, err := im.discord.ChannelMessageSendEmbed(im.channelId, msg); err != nil {
			c.WithFields(log.Fields{
				"err":   err,
				"title": msg.Title,
			}).Warn("discord notify failed")
		}
	})
}

func (im *impl) NotifyAuctionStarted(c ctx.Ctx, auctionId int64, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, reservePrice string) {
	im.send(c, &discordgo.MessageEmbed{
		Title: "Auction started!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", auctionId)},
			{Name: "Asset", Value: fmt.Sprintf("%s/%s", contract, tokenId)},
			{Name: "Chain", Value: fmt.Sprintf("%d", chainId)},
			{Name: "Reserve", Value: fmt.Sprintf("%s USD", reservePrice)},
		},
	})
}

func (im *impl) NotifyBidPlaced(c ctx.Ctx, auctionId int64, bidder domain.Address, amount string) {
	im.send(c, &discordgo.MessageEmbed{
		Title: "New highest bid!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", auctionId)},
			{Name: "Bidder", Value: string(bidder)},
			{Name: "Bid", Value: fmt.Sprintf("%s USD", amount)},
		},
	})
}

func (im *impl) NotifyAuctionSettled(c ctx.Ctx, auctionId int64, winner domain.Address, amount string) {
	im.send(c, &discordgo.MessageEmbed{
		Title: "Auction settled!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", auctionId)},
			{Name: "Winner", Value: string(winner)},
			{Name: "Price", Value: fmt.Sprintf("%s USD", amount)},
		},
	})
}

func (im *impl) Close() {
	im.workerPool.Release()
}
