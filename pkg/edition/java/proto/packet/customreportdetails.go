package packet

import (
	"io"

	"github.com/DevBobcorn/CornCraft-sub012/pkg/edition/java/proto/util"
	"github.com/DevBobcorn/CornCraft-sub012/pkg/proto"
)

const maxReportDetails = 32

// ReportDetail is a key value pair included in client crash reports.
type ReportDetail struct {
	Title       string
	Description string
}

// CustomReportDetails are details the server wants in crash reports of the client.
type CustomReportDetails struct {
	Details []ReportDetail
}

func (p *CustomReportDetails) Encode(_ *proto.PacketContext, wr io.Writer) error {
	w := util.PanicWriter(wr)
	w.VarInt(len(p.Details))
	for _, d := range p.Details {
		w.String(d.Title)
		w.String(d.Description)
	}
	return nil
}

func (p *CustomReportDetails) Decode(_ *proto.PacketContext, rd io.Reader) error {
	r := util.PanicReader(rd)
	p.Details = make([]ReportDetail, r.Count(maxReportDetails))
	for i := range p.Details {
		r.StringMax(&p.Details[i].Title, 128)
		r.StringMax(&p.Details[i].Description, 4096)
	}
	return nil
}

var _ proto.Packet = (*CustomReportDetails)(nil)
