package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/roberto426/Examen2-7234547/events"
	"github.com/roberto426/Examen2-7234547/services"
	"github.com/spf13/cobra"
)

const recoveryIdle = 2 * time.Second

var demandCmd = &cobra.Command{
	Use:   "demand",
	Short: "Run the product demand aggregator",
	Long: `Consume pedido.registrado events from kafka.topic and keep a running
count of detalle lines per producto. Every new count is published, keyed by
product id, to the compacted kafka.demand_topic, which is also read back on
startup to restore the table.`,
	RunE: runDemand,
}

func init() {
	rootCmd.AddCommand(demandCmd)
}

func runDemand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required by the demand aggregator")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer, err := services.NewKafkaService(cfg.Kafka.Brokers)
	if err != nil {
		return fmt.Errorf("failed to initialize Kafka service: %w", err)
	}
	defer producer.Close()

	client, err := sarama.NewClient(cfg.Kafka.Brokers, events.NewConsumerConfig())
	if err != nil {
		return fmt.Errorf("failed to create Kafka client: %w", err)
	}
	defer client.Close()

	aggregator := events.NewDemandAggregator(cfg.Kafka.DemandTopic, producer)

	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		return fmt.Errorf("failed to create recovery consumer: %w", err)
	}
	err = aggregator.RecoverState(ctx, consumer, client, recoveryIdle)
	consumer.Close()
	if err != nil {
		return err
	}

	group, err := sarama.NewConsumerGroupFromClient(cfg.Kafka.GroupID, client)
	if err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}
	defer group.Close()

	if err := events.Run(ctx, group, cfg.Kafka.Topic, aggregator); err != nil {
		return err
	}

	for i, p := range aggregator.Top(services.TopProductosLimit) {
		log.Printf("Top %d: producto %d with %d lines", i+1, p.IDProducto, p.Cantidad)
	}
	return nil
}
