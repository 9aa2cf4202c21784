package main

import (
	"context"
	"flag"
	"log"

	"github.com/golang/glog"

	"github.com/robotalks/tic.go/pkg/env"
	"github.com/robotalks/tic.go/pkg/framework"
	"github.com/robotalks/tic.go/pkg/telemetry"
	"github.com/robotalks/tic.go/pkg/telemetry/mqtt"
	"github.com/robotalks/tic.go/pkg/telemetry/websocket"
)

var watch bool

func init() {
	env.SetupFlags()
	telemetry.SetupFlags()
	flag.BoolVar(&watch, "watch", watch, "Print snapshots published to MQTT instead of polling a device.")
}

func main() {
	flag.Parse()
	conf := telemetry.NewConfig()
	runner := framework.NewRunner().HandleSignals()
	if watch {
		runner.Go(framework.NamedRun("watch", framework.RunFunc(func(ctx context.Context) error {
			return watchSnapshots(ctx, conf)
		})))
	} else {
		h := env.MustNewConfig().MustOpen()
		defer h.Close()
		runner.Go(mustPoller(conf, h))
	}
	if err := runner.Wait(); err != nil {
		log.Fatalln(err)
	}
}

func mustPoller(conf *telemetry.Config, dev telemetry.DeviceReader) framework.Runnable {
	poller := telemetry.NewPoller(dev)
	poller.Interval, poller.Settings, poller.Node = conf.Interval, conf.Settings, conf.Node
	var runners []framework.Runnable
	if conf.MQTTURL != "" {
		q, err := mqtt.NewQueueFromURL(conf.MQTTURL)
		if err != nil {
			log.Fatalln(err)
		}
		if err := q.Connect(); err != nil {
			log.Fatalln(err)
		}
		poller.Sinks = append(poller.Sinks, mqtt.NewSink(q, conf.Format))
		glog.Infof("publishing to %s as %s", conf.MQTTURL, mqtt.Topic(conf.Node))
	}
	if conf.WSAddr != "" {
		sink := websocket.NewSink(conf.Format)
		poller.Sinks = append(poller.Sinks, sink)
		runners = append(runners, &websocket.Server{Addr: conf.WSAddr, Sink: sink})
	}
	if len(poller.Sinks) == 0 {
		poller.Sinks = append(poller.Sinks, telemetry.SinkFunc(func(s *telemetry.Snapshot) error {
			return printSnapshot(s.Node, s, conf.Format)
		}))
	}
	runners = append(runners, poller)
	return framework.RunFunc(func(ctx context.Context) error {
		r := framework.NewRunnerWith(ctx).Go(runners...)
		return r.Wait()
	})
}

func watchSnapshots(ctx context.Context, conf *telemetry.Config) error {
	if conf.MQTTURL == "" {
		log.Fatalln("-mqtt is required with -watch")
	}
	q, err := mqtt.NewQueueFromURL(conf.MQTTURL)
	if err != nil {
		return err
	}
	mqtt.SubSnapshots(q, func(node string, payload []byte) {
		if conf.Format.Binary() {
			log.Printf("%s: %d bytes", node, len(payload))
			return
		}
		log.Printf("%s: %s", node, string(payload))
	})
	if err := q.Connect(); err != nil {
		return err
	}
	defer q.Close()
	<-ctx.Done()
	return ctx.Err()
}

func printSnapshot(node string, s *telemetry.Snapshot, format telemetry.Format) error {
	if format.Binary() {
		format = telemetry.FormatJSON
	}
	data, err := s.Encode(format)
	if err != nil {
		return err
	}
	log.Printf("%s: %s", node, string(data))
	return nil
}
